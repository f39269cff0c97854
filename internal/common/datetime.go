package common

// DateFormatYYYYMMDD is the layout of every calendar date crossing the API, the CLI and the event payloads.
const DateFormatYYYYMMDD = "2006-01-02"
