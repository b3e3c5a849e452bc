// Package services contains the application services behind the CLI
// screens: browsing the drug and pharmacy catalog, account recovery, and
// the report workflow. Services hold no UI state; list screens receive a
// pager and own it.
package services
