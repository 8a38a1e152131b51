// Package pkg holds the public libraries of wrrc.
//
//   - [chain]: enumeration and queue ranking of repeater configurations
//   - [report]: table, JSON and YAML output of priority lists
//   - [errors]: coded errors shared by the library and the CLI
//   - [observability]: generator hooks for logging and metrics
//   - [buildinfo]: version information stamped at build time
//
// # Quick Start
//
//	res, err := chain.Generate(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteTable(os.Stdout, res)
//	fmt.Println(report.Summary(res))
package pkg
