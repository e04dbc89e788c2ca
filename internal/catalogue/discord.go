package catalogue

// Entries describing the objects handed to a running command, plus the
// platform methods and runtime utilities generated code may call.
var discordEntries = []Entry{
	// Interaction object, available to slash, button and modal commands.
	{Name: "interaction.user", Category: CategoryDiscord, Type: "property", Description: "User who triggered the command"},
	{Name: "interaction.user.id", Category: CategoryDiscord, Type: "property", Description: "User's Discord ID", Example: "123456789012345678"},
	{Name: "interaction.user.username", Category: CategoryDiscord, Type: "property", Description: "User's username"},
	{Name: "interaction.user.displayName", Category: CategoryDiscord, Type: "property", Description: "User's display name"},
	{Name: "interaction.user.avatar", Category: CategoryDiscord, Type: "property", Description: "User's avatar URL"},
	{Name: "interaction.user.bot", Category: CategoryDiscord, Type: "property", Description: "Whether user is a bot"},
	{Name: "interaction.user.createdAt", Category: CategoryDiscord, Type: "property", Description: "Account creation date"},
	{Name: "interaction.member", Category: CategoryDiscord, Type: "property", Description: "Guild member object"},
	{Name: "interaction.member.displayName", Category: CategoryDiscord, Type: "property", Description: "Member's server nickname"},
	{Name: "interaction.member.roles", Category: CategoryDiscord, Type: "property", Description: "Member's roles collection"},
	{Name: "interaction.member.joinedAt", Category: CategoryDiscord, Type: "property", Description: "When member joined server"},
	{Name: "interaction.member.permissions", Category: CategoryDiscord, Type: "property", Description: "Member's permissions"},
	{Name: "interaction.guild", Category: CategoryDiscord, Type: "property", Description: "Server/guild object"},
	{Name: "interaction.guild.id", Category: CategoryDiscord, Type: "property", Description: "Server's ID"},
	{Name: "interaction.guild.name", Category: CategoryDiscord, Type: "property", Description: "Server's name"},
	{Name: "interaction.guild.memberCount", Category: CategoryDiscord, Type: "property", Description: "Number of members"},
	{Name: "interaction.guild.ownerId", Category: CategoryDiscord, Type: "property", Description: "Server owner's ID"},
	{Name: "interaction.guild.createdAt", Category: CategoryDiscord, Type: "property", Description: "Server creation date"},
	{Name: "interaction.channel", Category: CategoryDiscord, Type: "property", Description: "Channel where command was used"},
	{Name: "interaction.channel.id", Category: CategoryDiscord, Type: "property", Description: "Channel's ID"},
	{Name: "interaction.channel.name", Category: CategoryDiscord, Type: "property", Description: "Channel's name"},
	{Name: "interaction.channel.type", Category: CategoryDiscord, Type: "property", Description: "Channel type"},
	{Name: "interaction.commandName", Category: CategoryDiscord, Type: "property", Description: "Name of the command used"},
	{Name: "interaction.options", Category: CategoryDiscord, Type: "property", Description: "Command options/arguments"},
	{Name: "interaction.createdAt", Category: CategoryDiscord, Type: "property", Description: "When interaction was created"},

	// Platform methods.
	{Name: "interaction.reply", Category: CategoryDiscord, Type: "method", Description: "Reply to a slash command interaction", Example: "interaction.reply('Hello!')"},
	{Name: "interaction.followUp", Category: CategoryDiscord, Type: "method", Description: "Send a follow-up message after replying"},
	{Name: "interaction.editReply", Category: CategoryDiscord, Type: "method", Description: "Edit the initial reply"},
	{Name: "interaction.deleteReply", Category: CategoryDiscord, Type: "method", Description: "Delete the initial reply"},
	{Name: "message.reply", Category: CategoryDiscord, Type: "method", Description: "Reply to a message"},
	{Name: "message.delete", Category: CategoryDiscord, Type: "method", Description: "Delete a message"},
	{Name: "message.edit", Category: CategoryDiscord, Type: "method", Description: "Edit a message"},
	{Name: "message.react", Category: CategoryDiscord, Type: "method", Description: "Add reaction to message", Example: "message.react('👍')"},
	{Name: "channel.send", Category: CategoryDiscord, Type: "method", Description: "Send message to channel"},
	{Name: "channel.bulkDelete", Category: CategoryDiscord, Type: "method", Description: "Delete multiple messages (2-100)"},
	{Name: "member.kick", Category: CategoryDiscord, Type: "method", Description: "Kick member from server"},
	{Name: "member.ban", Category: CategoryDiscord, Type: "method", Description: "Ban member from server"},
	{Name: "member.timeout", Category: CategoryDiscord, Type: "method", Description: "Timeout member for a duration in milliseconds"},
	{Name: "member.roles.add", Category: CategoryDiscord, Type: "method", Description: "Add role to member"},
	{Name: "member.roles.remove", Category: CategoryDiscord, Type: "method", Description: "Remove role from member"},
	{Name: "guild.members.fetch", Category: CategoryDiscord, Type: "method", Description: "Fetch guild member by ID"},
	{Name: "guild.channels.create", Category: CategoryDiscord, Type: "method", Description: "Create new channel"},
	{Name: "guild.roles.create", Category: CategoryDiscord, Type: "method", Description: "Create new role"},

	// Runtime utilities.
	{Name: "Math.random", Category: CategoryDiscord, Type: "utility", Description: "Generate random number between 0 and 1", Example: "Math.random()"},
	{Name: "Math.floor", Category: CategoryDiscord, Type: "utility", Description: "Round number down", Example: "Math.floor(number)"},
	{Name: "Date.now", Category: CategoryDiscord, Type: "utility", Description: "Current timestamp", Example: "Date.now()"},
	{Name: "setTimeout", Category: CategoryDiscord, Type: "utility", Description: "Execute function after delay"},
	{Name: "JSON.stringify", Category: CategoryDiscord, Type: "utility", Description: "Convert object to JSON string"},
	{Name: "JSON.parse", Category: CategoryDiscord, Type: "utility", Description: "Parse JSON string to object"},
}
