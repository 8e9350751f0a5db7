// Package sitetree provides a build-time exporter for static site navigation
// trees. It walks a site's directory tree, classifies pages through embedded
// sitemap directives, extracts display titles, and writes the pruned
// hierarchy as a JSON artifact consumed by front-end navigation code.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, yaml/).
package sitetree
