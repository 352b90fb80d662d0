package internal

// Version is the current totaltranslate release.
const Version = "0.4.2"
