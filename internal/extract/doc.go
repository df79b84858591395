// Package extract parses recording topic strings with an ordered list of
// regular-expression rules.
//
// Rules are tried in list order and the first match wins; ordering encodes
// pattern specificity, so explicit separators ("<>", "&") rank above generic
// single-dash splits, and keyword rules for session types short-circuit name
// extraction entirely. Raw captures are never returned as-is: every captured
// name is canonicalized through the registries before it reaches a result.
//
// Week markers are parsed from a separate ordered pattern list and accept
// alphanumeric tags ("2B") verbatim.
package extract
