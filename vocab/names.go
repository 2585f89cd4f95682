package vocab

// AgentNodeName returns the name element for an agent type.
func AgentNodeName(agentType string) (string, bool) {
	switch agentType {
	case "agent_person":
		return "persname", true
	case "agent_family":
		return "famname", true
	case "agent_corporate_entity":
		return "corpname", true
	}
	return "", false
}

// OriginationEncodingAnalog returns the MARC field for an origination name.
func OriginationEncodingAnalog(nodeName string) string {
	if nodeName == "corpname" {
		return "110"
	}
	return "100"
}

// FormatRole upper-cases the first character of a role code when it is a
// lower-case ASCII letter. Anything else is returned unchanged.
func FormatRole(role string) string {
	if role == "" || role[0] < 'a' || role[0] > 'z' {
		return role
	}
	return string(role[0]-'a'+'A') + role[1:]
}
