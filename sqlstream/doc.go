// Package sqlstream adapts database/sql to the reducing protocol. Scan
// drives a reducer from a row cursor, Query exposes a query result as a pull
// sequence for the lazy application, and Exec is a terminal reducer that
// writes each element through a prepared statement inside one transaction.
// The protocol itself is errorless; these adapters bridge to errorful IO by
// returning errors at the driver boundary or, for Exec, by halting the chain
// and reporting through Err after the run.
package sqlstream
