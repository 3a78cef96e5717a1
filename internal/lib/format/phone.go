package format

import "fmt"

// Phone formats US numbers as (XXX) XXX-XXXX, dropping a leading country
// code 1. Numbers of any other length are returned unchanged.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	d := digits(phone)
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("(%s) %s-%s", d[1:4], d[4:7], d[7:])
	}
	return phone
}

func digits(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b = append(b, s[i])
		}
	}
	return string(b)
}
