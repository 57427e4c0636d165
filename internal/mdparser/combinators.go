package mdparser

import "strings"

// result is the (remaining input, parsed output) pair every combinator
// returns on success, mirroring nom's IResult<&str, O>.
type result[O any] struct {
	remaining string
	output    O
}

// tag consumes the literal prefix t from input or fails with KindTag.
func tag(t, input string) (result[string], error) {
	if strings.HasPrefix(input, t) {
		return result[string]{remaining: input[len(t):], output: t}, nil
	}
	return result[string]{}, errTag(input)
}

// isNot consumes the maximal non-empty run of input containing none of the
// bytes in forbidden. Fails with KindIsNot if the run would be empty.
func isNot(forbidden, input string) (result[string], error) {
	i := 0
	for i < len(input) && !strings.ContainsRune(forbidden, rune(input[i])) {
		i++
	}
	if i == 0 {
		return result[string]{}, errIsNot(input)
	}
	return result[string]{remaining: input[i:], output: input[:i]}, nil
}

// delimited parses open, then body (applied to what's left after open),
// then close. This is the workhorse behind italic/bold/code/link/image.
func delimited(openTag string, body func(string) (result[string], error), closeTag, input string) (result[string], error) {
	afterOpen, err := tag(openTag, input)
	if err != nil {
		return result[string]{}, err
	}
	bodyRes, err := body(afterOpen.remaining)
	if err != nil {
		return result[string]{}, err
	}
	final, err := tag(closeTag, bodyRes.remaining)
	if err != nil {
		return result[string]{}, err
	}
	return result[string]{remaining: final.remaining, output: bodyRes.output}, nil
}

// alt tries each parser in order, returning the first success. If every
// alternative fails, returns the error from the last alternative tried.
func alt[O any](input string, parsers ...func(string) (result[O], error)) (result[O], error) {
	var lastErr error
	for _, p := range parsers {
		r, err := p(input)
		if err == nil {
			return r, nil
		}
		lastErr = err
	}
	return result[O]{}, lastErr
}

// notStartsWithAny fails with KindNot iff input begins with one of the
// given prefixes; it consumes nothing on success.
func notStartsWithAny(input string, prefixes ...string) error {
	for _, p := range prefixes {
		if strings.HasPrefix(input, p) {
			return errNot(input)
		}
	}
	return nil
}
