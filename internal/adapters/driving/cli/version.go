package cli

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

const versionTemplate = "blast-util version {{.Version}}\n"
