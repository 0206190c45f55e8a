package forth

// @generated from forth_test.go

//go:generate go run scripts/gen_test_expects.go -- forth_test.go expects_test.go

// withForthOptions wraps forthTestCase.withOptions.
func withForthOptions(opts ...Option) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.withOptions(opts...)
	}
}

// withForthStack wraps forthTestCase.withStack.
func withForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.withStack(values...)
	}
}

// withForthPrelude adds a step evaluating the Prelude word library.
func withForthPrelude() func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.withPrelude()
	}
}

// expectForthError expects the last added step to fail with err.
func expectForthError(err error) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectError(err)
	}
}

// expectForthErrorAs expects the last added step to fail with an error that
// errors.As can store into target.
func expectForthErrorAs(target interface{}) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectErrorAs(target)
	}
}

// expectForthStack wraps forthTestCase.expectStack.
func expectForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectStack(values...)
	}
}

// expectForthWords wraps forthTestCase.expectWords.
func expectForthWords(names ...string) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectWords(names...)
	}
}

// expectForthDefined expects name to be visible in the dictionary, or not.
func expectForthDefined(name string, defined bool) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectDefined(name, defined)
	}
}

// expectForthDump expects Dump to write exactly dump.
func expectForthDump(dump string) func(forthTestCase) forthTestCase {
	return func(tc forthTestCase) forthTestCase {
		return tc.expectDump(dump)
	}
}
