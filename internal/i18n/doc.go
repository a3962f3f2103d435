// Package i18n resolves interface strings for the supported languages.
//
// Strings live in embedded YAML trees, one file per language under locales/.
// Lookups use dotted keys (status.mfirst, time.minutesAgo) and never fail:
// a missing segment or a non-string value yields the key itself, so a gap in
// a locale shows up on screen instead of crashing the UI. Template values
// carry a {n} placeholder and are rendered through Format.
//
// Ukrainian is the default language and is always listed first.
package i18n
