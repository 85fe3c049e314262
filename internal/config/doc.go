// Package config loads the catalog configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/catalog/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/catalog/config.toml
//   - Data directory: ~/.local/share/catalog
//   - Backend: file (<data_dir>/<slot_key>.json)
//   - Slot key: productos
//   - Locale: en (used for collation when sorting names and categories)
//   - Log level: info, written to <data_dir>/catalog.log
//
// # TOML Format
//
//	data_dir  = "~/.local/share/catalog"
//	backend   = "sqlite"      # or "file"
//	slot_key  = "productos"
//	locale    = "es"
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is performed on data_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - Invalid TOML ("parse config: ...")
//   - Unknown backend, a slot key containing path separators, or an unknown
//     log level
package config
