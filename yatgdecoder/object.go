package yatgdecoder

// object is one JSON object being decoded together with its path from the root.
type object struct {
	path   string
	fields map[string]any
}

func (o object) child(key string) string {
	if o.path == "" {
		return key
	}

	return o.path + "." + key
}

// lookup treats an explicit null the same as an absent key.
func (o object) lookup(key string) (any, bool) {
	raw, ok := o.fields[key]
	if !ok || raw == nil {
		return nil, false
	}

	return raw, true
}

func (o object) has(key string) bool {
	_, ok := o.lookup(key)

	return ok
}

// reader decodes fields of one object and keeps the first error, so a
// struct literal can list its fields without an error check per line.
// Go evaluates the literal left to right, hence the reported error is the
// first failing field in declaration order.
type reader struct {
	object
	err error
}

func read(o object) *reader {
	return &reader{object: o}
}

func req[T any](r *reader, key string, conv converter[T]) T {
	var zero T

	if r.err != nil {
		return zero
	}

	raw, ok := r.lookup(key)
	if !ok {
		r.err = missingField(r.child(key))

		return zero
	}

	value, err := conv(r.child(key), raw)
	if err != nil {
		r.err = err

		return zero
	}

	return value
}

func opt[T any](r *reader, key string, conv converter[T]) *T {
	if r.err != nil {
		return nil
	}

	raw, ok := r.lookup(key)
	if !ok {
		return nil
	}

	value, err := conv(r.child(key), raw)
	if err != nil {
		r.err = err

		return nil
	}

	return &value
}

// optList is opt for arrays: nil when absent, a non-nil slice when present.
func optList[T any](r *reader, key string, element converter[T]) []T {
	list := opt(r, key, listOf(element))
	if list == nil {
		return nil
	}

	return *list
}

func optObject(r *reader, key string) map[string]any {
	raw := opt(r, key, toRawObject)
	if raw == nil {
		return nil
	}

	return *raw
}
