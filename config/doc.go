// Package config resolves the run configuration of prophrun.
//
// Sources, highest precedence first:
//
//  1. command-line flags that were set explicitly
//  2. environment variables PROPH_<KEY> (a .env file is loaded first and
//     never overrides variables already set)
//  3. the config file, in its [run] section (or the chosen section)
//  4. built-in defaults
//
// The config file is INI unless its extension names another format viper
// understands (yaml, toml, json, ...). Recognized keys:
//
//	data_path      base directory for relative matfile references (".")
//	corr_function  combine policy name ("pearson")
//	matfile        network file reference
//	qindex         query index, empty for none
//	qname          query label, empty for none
//	out            result file, empty for none
//	n              result list length, 0 for all (10)
//	memsave        compressed relation storage (false)
//	profile        write a CPU profile (false)
//	alpha          diffusion strength in [0,1), 0 disables (0)
//	tol            diffusion convergence threshold (1e-6)
//	max_iter       diffusion round limit (100)
//	log_level      debug, info, warn or error ("info")
package config
