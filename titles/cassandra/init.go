// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cassandra

import (
	"fmt"

	"github.com/absmach/netflix/titles"
)

const keyspaceCQL = `CREATE KEYSPACE IF NOT EXISTS %s
	WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`

const masterCQL = `CREATE TABLE IF NOT EXISTS %s.netflix_master (
	title        text,
	show_id      int,
	cast         list<text>,
	country      list<text>,
	date_added   date,
	description  text,
	director     list<text>,
	duration     text,
	listed_in    list<text>,
	rating       text,
	release_year int,
	type         text,
	PRIMARY KEY ((title), show_id)
)`

const byDateCQL = `CREATE TABLE IF NOT EXISTS %s.netflix_titles_by_date (
	release_year int,
	date_added   date,
	show_id      int,
	title        text,
	PRIMARY KEY ((release_year), date_added, show_id)
) WITH CLUSTERING ORDER BY (date_added DESC, show_id ASC)`

const byRatingCQL = `CREATE TABLE IF NOT EXISTS %s.netflix_titles_by_rating (
	rating  text,
	show_id int,
	title   text,
	PRIMARY KEY ((rating), show_id)
)`

func tableCQL(keyspace string, table titles.Table) (string, bool) {
	switch table {
	case titles.Master:
		return fmt.Sprintf(masterCQL, keyspace), true
	case titles.ByDate:
		return fmt.Sprintf(byDateCQL, keyspace), true
	case titles.ByRating:
		return fmt.Sprintf(byRatingCQL, keyspace), true
	default:
		return "", false
	}
}
