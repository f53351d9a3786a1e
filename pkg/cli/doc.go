// Package cli implements the validate command line tool.
//
// validate reads a YAML rule file, builds a record from a JSON/YAML file and
// --set key=value pairs, runs a validation session over it and prints the
// first failing message per field:
//
//	validate -r signup.yaml -i post.json
//	validate -r signup.yaml --set id=100 --set alter=15 --output json --fail-on-error
//
// Defaults are read from VALIDATE_* environment variables (and a .env file):
//
//	VALIDATE_LOG_LEVEL   debug|info|warn|error (default info)
//	VALIDATE_LOG_FORMAT  text|json (default text)
//	VALIDATE_SEPARATOR   rule argument separator (default "||")
//	VALIDATE_OUTPUT      text|json (default text)
//	VALIDATE_SANITIZE    comma separated sanitizers (default "trim")
//
// A separator set in the rule file wins over VALIDATE_SEPARATOR. Logs go to
// stderr, results to stdout.
package cli
