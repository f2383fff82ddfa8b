// Command dslconv converts Lingvo DSL dictionaries to JSON files or imports
// them into PostgreSQL.
//
// Commands:
//
//	convert  <file.dsl>...  write <name>.json per input
//	import   <file.dsl>...  store entries in PostgreSQL
//	migrate                 apply database migrations
//	lookup   <word>         find a headword in imported dictionaries
//	list                    list imported dictionaries
//	rules                   print the active markup rules
//
// Exit codes: 0 = success, 1 = error.
package main

import "github.com/heartmarshall/dslconv/internal/cli"

func main() {
	cli.Execute()
}
