// Package backup manages timestamped copies of configuration files.
//
// Backups live flat in one directory and are named
// <stem>_<YYYYMMDD_HHMMSS.mmm>.<ext>, so listing and pruning for a given
// original file is a prefix match on its stem. Retention keeps the N most
// recent backups per original file.
package backup
