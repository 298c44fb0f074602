package app_info

// NAME is the name of the application
const NAME = "beacon"

// VERSION is the current version of the application
const VERSION = "v0.1.0"
