// Package config loads gridpath query files.
//
// A query file is HCL. It holds an optional settings block and one query
// block per question to answer:
//
//	settings {
//	  workers   = 4
//	  log_level = "info"
//	}
//
//	query "risk" {
//	  input    = "${config_dir}/cave.txt"
//	  alphabet = "cost"   # cost | elevation | letters
//	  rule     = "free"   # free | ascend | descend
//	  cost     = "enter"  # enter | unit
//	  tiles    = [5, 5]
//	}
//
// config_dir evaluates to the directory holding the query file, so inputs can
// be referenced relative to it. Decoding uses hclparse and gohcl; validation
// errors wrap ErrInvalidQuery.
package config
