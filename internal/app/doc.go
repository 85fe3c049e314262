// Package app is the composition root of the catalog.
//
// Open wires everything in a fixed order:
//
//  1. Load config from ~/.config/catalog/config.toml (defaults when missing)
//  2. Start the zap file logger at <data_dir>/catalog.log
//  3. Open the persistence slot (file or sqlite backend)
//  4. Load the store from the slot
//  5. Resolve the prefs file and build the locale-aware sorter
//
// Run hands the resulting Env to the Bubble Tea UI. The subcommands in
// cmd/catalog use the same Env through List, Add, Edit and Remove, so both
// surfaces share one filter, sort and validation pipeline.
//
// Nothing here is global: every dependency travels inside Env.
package app
