package utm

// Version is the release of this module, reported by utmconv.
const Version = "1.0.0"
