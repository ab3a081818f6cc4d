package types

// Version is the tool version, overwritten at build time via -ldflags.
var Version = "dev"

// DefaultNotaryProfile is the keychain credential profile the notarization
// client authenticates with unless the operator overrides it. The entry must
// be pre-configured in the OS credential store.
const DefaultNotaryProfile = "NOTARISATION_PASSWORD"
