package internal

// Version is the current release of phoneword
const Version = "0.3.0"
