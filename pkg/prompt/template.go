package prompt

// Compose renders the single-turn completion prompt sent to the model:
//
//	<suffix>
//	User: <input>
//	Assistant:
//
// An empty suffix still produces the leading newline.
func Compose(userInput, suffix string) string {
	return suffix + "\nUser: " + userInput + "\nAssistant:"
}
