// Package ux collects the user-facing strings and terminal styles the
// pickaxe commands print, so wording lives in one place.
package ux
