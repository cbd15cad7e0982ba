package constants

// EnvLocal is the env.env value used for development machines.
const EnvLocal = "local"
