package catalogue

var userEntries = []Entry{
	{Name: "user.id", Category: CategoryUser, Type: "property", Description: "User's unique Discord ID", Example: "123456789012345678"},
	{Name: "user.username", Category: CategoryUser, Type: "property", Description: "User's username", Example: "CoolUser123"},
	{Name: "user.displayName", Category: CategoryUser, Type: "property", Description: "User's display name"},
	{Name: "user.tag", Category: CategoryUser, Type: "property", Description: "User's full Discord tag", Example: "CoolUser123#1234"},
	{Name: "user.discriminator", Category: CategoryUser, Type: "property", Description: "User's discriminator, if any"},
	{Name: "user.avatar", Category: CategoryUser, Type: "property", Description: "User's avatar URL"},
	{Name: "user.banner", Category: CategoryUser, Type: "property", Description: "User's banner URL"},
	{Name: "user.bot", Category: CategoryUser, Type: "property", Description: "Whether user is a bot", Example: "false"},
	{Name: "user.system", Category: CategoryUser, Type: "property", Description: "Whether user is a system user", Example: "false"},
	{Name: "user.createdAt", Category: CategoryUser, Type: "property", Description: "Account creation timestamp"},
	{Name: "user.createdTimestamp", Category: CategoryUser, Type: "property", Description: "Account creation time in milliseconds"},
	{Name: "user.displayAvatarURL", Category: CategoryUser, Type: "method", Description: "Avatar URL with size/format options", Example: "user.displayAvatarURL({ size: 4096 })"},
	{Name: "user.send", Category: CategoryUser, Type: "method", Description: "Send a direct message to the user"},
}
