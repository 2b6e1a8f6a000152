package codes

// FormatDateISO converts a CCYYMMDD value to YYYY-MM-DD. Anything that is
// not exactly eight characters formats to "".
func FormatDateISO(value string) string {
	if len(value) != 8 {
		return ""
	}
	return value[:4] + "-" + value[4:6] + "-" + value[6:8]
}

// FormatTimeISO converts an HHMM or HHMMSS value to HH:MM:SS. Values too
// short to carry hours and minutes format to "00:00:00".
func FormatTimeISO(value string) string {
	if len(value) < 4 {
		return "00:00:00"
	}
	seconds := "00"
	if len(value) >= 6 {
		seconds = value[4:6]
	}
	return value[:2] + ":" + value[2:4] + ":" + seconds
}

// FormatICDCode inserts the decimal point after the category characters,
// so Z00121 renders as Z00.121. Codes of three characters or fewer are
// returned unchanged.
func FormatICDCode(code string) string {
	if len(code) > 3 {
		return code[:3] + "." + code[3:]
	}
	return code
}
