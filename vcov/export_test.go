package vcov

// Internal hooks for white-box tests.
var StdErrorsForTest = stdErrors
