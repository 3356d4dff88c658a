package engine

// Join resolves ref against base.
func Join(base URL, ref string) (URL, error) {
	b, err := toLib(base)
	if err != nil {
		return URL{}, err
	}
	w, err := b.Parse(ref)
	if err != nil {
		if base.CannotBeABase && kindFor(err) == KindRelativeURLWithoutBase {
			return URL{}, fail(KindRelativeURLWithCannotBeABaseBase, ref, err)
		}
		return URL{}, classify(ref, err)
	}
	return fromLib(w), nil
}
