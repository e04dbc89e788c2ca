package catalogue

var serverEntries = []Entry{
	{Name: "server.id", Category: CategoryServer, Type: "property", Description: "Server's unique ID", Example: "123456789012345678"},
	{Name: "server.name", Category: CategoryServer, Type: "property", Description: "Server name", Example: "My Gaming Server"},
	{Name: "server.description", Category: CategoryServer, Type: "property", Description: "Server description", Example: "A fun gaming community"},
	{Name: "server.icon", Category: CategoryServer, Type: "property", Description: "Server icon URL"},
	{Name: "server.banner", Category: CategoryServer, Type: "property", Description: "Server banner URL"},
	{Name: "server.ownerId", Category: CategoryServer, Type: "property", Description: "Server owner's user ID"},
	{Name: "server.memberCount", Category: CategoryServer, Type: "property", Description: "Total number of members", Example: "1500"},
	{Name: "server.createdAt", Category: CategoryServer, Type: "property", Description: "When server was created"},
	{Name: "server.verificationLevel", Category: CategoryServer, Type: "property", Description: "Server verification level"},
	{Name: "server.premiumTier", Category: CategoryServer, Type: "property", Description: "Server boost level"},
	{Name: "server.channels", Category: CategoryServer, Type: "property", Description: "All server channels"},
	{Name: "server.roles", Category: CategoryServer, Type: "property", Description: "All server roles"},
	{Name: "server.emojis", Category: CategoryServer, Type: "property", Description: "Custom server emojis"},
	{Name: "server.features", Category: CategoryServer, Type: "property", Description: "Server features array"},
	{Name: "server.iconURL", Category: CategoryServer, Type: "method", Description: "Icon URL with options", Example: "server.iconURL({ dynamic: true })"},
}
