package placeholder

import "strings"

// filenameChars are the characters stripped from filenames. Commas and
// spaces deliberately survive; only filesystem-hostile characters go.
var filenameChars = strings.NewReplacer(
	"<", "", ">", "", ":", "", `"`, "", "/", "", `\`, "", "|", "", "?", "", "*", "",
)

// SanitizeFilename strips the characters < > : " / \ | ? * from s,
// collapses whitespace runs, and trims.
func SanitizeFilename(s string) string {
	s = filenameChars.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizePath applies SanitizeFilename independently to each
// '/'-delimited segment, drops segments that sanitize to nothing, and
// rejoins with '/'.
func SanitizePath(s string) string {
	segments := strings.Split(s, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		clean := SanitizeFilename(seg)
		if clean == "" {
			continue
		}
		out = append(out, clean)
	}
	return strings.Join(out, "/")
}
