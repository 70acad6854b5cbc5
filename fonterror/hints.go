package fonterror

var hints = map[Kind]string{
	InvalidHTTPResponse:      "check the font name and your network connection; names are case-sensitive, e.g. JetBrainsMono",
	OpenPrefixDirectory:      "does the prefix directory exist? run 'nerdfonts init' or pass --prefix",
	DeleteTemporaryDirectory: "remove <prefix>/tmp manually and check its permissions",
	DeleteTemporaryZipFile:   "remove <prefix>/tmp.zip or <prefix>/tmp.tar.xz manually and check their permissions",
	CreateTemporaryDirectory: "is the prefix directory writable?",
	CreateTemporaryZipFile:   "is the prefix directory writable?",
	FlushTemporaryZipFile:    "is there enough free disk space under the prefix directory?",
	CreateFontDirectory:      "is the prefix directory writable?",
	FailedZipExtraction:      "the downloaded archive is corrupt or truncated; try again",
	ReadExtractedArchive:     "the extracted archive could not be read; check <prefix>/tmp permissions",
	FontNotFound:             "this archive doesn't contain a regular-weight font with that name",
	SaveFontFile:             "is <prefix>/fonts writable and is there enough free disk space?",
	OpenFontDirectory:        "no fonts installed yet; run 'nerdfonts download <name>' first",
	SetFontFile:              "is the font installed? see 'nerdfonts list'",
	DeleteFontFile:           "is the font installed? see 'nerdfonts list'",
	DeleteFontDirectory:      "check the permissions of <prefix>/fonts",
	DeleteCurrentFont:        "check the permissions of <prefix>/font.ttf",
	ReadCurrentFont:          "<prefix>/font.ttf is unreadable; check its permissions or run 'nerdfonts set <name>' again",
	InvalidFontName:          "font names are plain archive names such as 0xProto or JetBrainsMono",
	InvalidArguments:         "see 'nerdfonts help'",
	LoadConfig:               "fix or delete the configuration file",
}

// Hint returns the remediation hint for kind, or "" if there is none
func Hint(kind Kind) string {
	return hints[kind]
}
