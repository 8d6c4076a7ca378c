// Package hubsite provides the in-memory content repository and
// view-composition pipeline behind a multi-section content website.
//
// A single denormalized seed document is parsed once at startup
// (ParseSeed), indexed into an immutable Store, and read concurrently for
// the lifetime of the process. A Composer assembles one typed context per
// logical page (lists, single-entity pages, and the homepage carousel),
// ready to hand to a template engine or serialize directly as JSON. The
// template engine itself stays behind the Renderer interface; the only
// rendering this package performs is the embed components resolved from
// third-party media URLs (ResolveEmbeds) and markdown post bodies.
//
// Content references between entities are slug lists resolved at
// composition time. Stale references are expected in hand-maintained
// content and are dropped silently, never surfaced as errors.
package hubsite
