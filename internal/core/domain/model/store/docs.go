// Package store models the store-wide settings singleton.
//
// Settings hold the open/closed flag that gates checkout, the opening
// hours text and the promotional Banner. There is exactly one settings
// row, identified by SettingsID.
package store
