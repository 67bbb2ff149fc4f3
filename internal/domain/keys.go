package domain

// KeyPrefix namespaces every repository key in the shared Redis store.
const KeyPrefix = "conserve:"
