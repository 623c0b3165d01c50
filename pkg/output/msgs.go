package output

const (
	MsgDefaultDirectory = "No directory given, searching the current directory: '%s'"
	MsgSeparator        = "----------------------------------------"

	MsgBannerDirectory  = "Directory"
	MsgBannerFilename   = "File name"
	MsgBannerTerm       = "Search string"
	MsgBannerIgnoreCase = "Ignore case"
	MsgBannerRegex      = "Regular expression"
	MsgBannerExclude    = "Exclude"
	MsgYes              = "yes"
	MsgNo               = "no"

	MsgNoFiles      = "No files found in directory '%s'"
	MsgNoNamedFiles = "No files named '%s' found in directory '%s'"
	MsgChecked      = "Checked %d file(s) named '%s'"

	MsgCompleteLiteral = "Search complete: %d file(s) contain '%s'"
	MsgCompleteRegex   = "Search complete: %d file(s) match regular expression '%s'"
	MsgNoneLiteral     = "No file contains '%s'"
	MsgNoneRegex       = "No file matches regular expression '%s'"
	MsgErrorCount      = "%d error(s) occurred, see above"

	MsgErrorPrefix   = "Error:"
	MsgWarningPrefix = "Warning:"
)
