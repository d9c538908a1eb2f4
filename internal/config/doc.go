// Package config loads the optional HCL configuration file of the crucible
// command. The file can select default modes, define extra movement
// policies, and set logging and terminal-guard defaults:
//
//	log_level      = "debug"
//	log_format     = "text"
//	terminal_guard = true
//	select         = ["short", "long", "wide"]
//
//	mode "wide" {
//	  run_min = short.run_max
//	  run_max = long.run_max * 2
//	}
//
// The predefined policies are exposed to expressions as the objects short
// and long, each with run_min and run_max attributes.
package config
