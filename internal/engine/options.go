package engine

import (
	"fmt"
	"strings"
)

// SanitizeRunOptions transforms a user-supplied run_options string into the
// token vector actually spliced into a container invocation (spec.md §4.7).
// Tokenization is whitespace-split; the engine never re-quotes the user's
// string (spec.md §9). debugf receives one trace line per edit and is a
// no-op when "-d/--debug" is not set.
//
// Order is fixed: the interactive-mode guard runs first, user-identity
// forwarding second.
func SanitizeRunOptions(runOptions string, isTTY bool, debugf func(string)) []string {
	tokens := strings.Fields(runOptions)

	if !isTTY {
		tokens = dropInteractiveFlags(tokens, debugf)
	}

	return appendUserForwarding(tokens)
}

// dropInteractiveFlags removes tokens that request interactive mode: the
// long form "--interactive" is deleted outright, and a short cluster
// containing 'i' either loses that letter ("-it" -> "-t") or is removed
// entirely when 'i' is its only letter ("-i").
//
// The trace context differs by edit shape: dropping a letter out of a
// surviving cluster names the letter and the cluster it came from (e.g.
// "i" from "-it"); dropping a whole token names the token and the full
// run_options value (with user forwarding already folded in) it vanished
// from, since there is no surviving cluster left to point at.
func dropInteractiveFlags(tokens []string, debugf func(string)) []string {
	out := make([]string, 0, len(tokens))
	fullContext := strings.Join(appendUserForwarding(tokens), " ")

	for _, tok := range tokens {
		if tok == "--interactive" {
			trace(debugf, tok, fullContext)
			continue
		}

		if strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--") && len(tok) > 1 {
			letters := tok[1:]
			if strings.Contains(letters, "i") {
				remaining := strings.Replace(letters, "i", "", 1)
				if remaining == "" {
					trace(debugf, tok, fullContext)
					continue
				}
				trace(debugf, "i", tok)
				out = append(out, "-"+remaining)
				continue
			}
		}

		out = append(out, tok)
	}

	return out
}

func trace(debugf func(string), token, context string) {
	if debugf == nil {
		return
	}
	debugf(fmt.Sprintf("the input device is not TTY, dropping '%s' from '%s'", token, context))
}

// appendUserForwarding appends "--user $(id -u):$(id -g)" verbatim when
// neither "-u" nor "--user" is already present, so the surrounding shell
// substitutes the invoking user's real identity at run time.
func appendUserForwarding(tokens []string) []string {
	for _, t := range tokens {
		if t == "-u" || t == "--user" {
			return tokens
		}
	}
	return append(tokens, "--user", "$(id -u):$(id -g)")
}

// LastFlagValue scans tokens left-to-right and returns the token
// immediately following the last occurrence of flag. If that last
// occurrence is terminal (no following token), ok is false — callers fall
// back to a synthesized default (spec.md §4.5's tag-discovery rule, reused
// by the Composition Driver's --file discovery).
func LastFlagValue(tokens []string, flag string) (value string, ok bool) {
	for i, t := range tokens {
		if t != flag {
			continue
		}
		if i+1 < len(tokens) {
			value, ok = tokens[i+1], true
		} else {
			ok = false
		}
	}
	return value, ok
}
