package env

// Prefix is the prefix for all service environment variables
const Prefix = "POLICYRATES"
