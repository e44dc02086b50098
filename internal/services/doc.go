// Package services contains the application services called by the CLI and
// the scheduler: authentication, inventory management and low-stock alerts.
//
// Services validate and parse user input at the boundary, delegate storage to
// the store, and report failures as the sentinel errors from package common.
package services
