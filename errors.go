package chainhashmap

// KeyNotFound - Custom error to inform that no entry with the requested key was found
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}
