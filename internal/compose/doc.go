// Package compose implements the composition root for the landing page. A
// Composer resolves the enabled, ordered section set from the registry in a
// single initialization pass, tracks the user-visible status of every
// attempted section, and renders each loaded section inside a failure
// isolation boundary so one broken section cannot take down the page.
package compose
