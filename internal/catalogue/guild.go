package catalogue

var guildEntries = []Entry{
	{Name: "guild.id", Category: CategoryGuild, Type: "property", Description: "Server's unique ID"},
	{Name: "guild.name", Category: CategoryGuild, Type: "property", Description: "Server's name"},
	{Name: "guild.description", Category: CategoryGuild, Type: "property", Description: "Server description"},
	{Name: "guild.icon", Category: CategoryGuild, Type: "property", Description: "Server icon URL"},
	{Name: "guild.banner", Category: CategoryGuild, Type: "property", Description: "Server banner URL"},
	{Name: "guild.ownerId", Category: CategoryGuild, Type: "property", Description: "Server owner's user ID"},
	{Name: "guild.memberCount", Category: CategoryGuild, Type: "property", Description: "Total number of members"},
	{Name: "guild.createdAt", Category: CategoryGuild, Type: "property", Description: "When server was created"},
	{Name: "guild.verificationLevel", Category: CategoryGuild, Type: "property", Description: "Server verification level"},
	{Name: "guild.channels", Category: CategoryGuild, Type: "property", Description: "All server channels"},
	{Name: "guild.roles", Category: CategoryGuild, Type: "property", Description: "All server roles"},
	{Name: "guild.emojis", Category: CategoryGuild, Type: "property", Description: "Custom server emojis"},
	{Name: "guild.features", Category: CategoryGuild, Type: "property", Description: "Server features array"},
	{Name: "member.id", Category: CategoryGuild, Type: "property", Description: "Member's user ID"},
	{Name: "member.user", Category: CategoryGuild, Type: "property", Description: "User object of the member"},
	{Name: "member.displayName", Category: CategoryGuild, Type: "property", Description: "Member's display name in the server"},
	{Name: "member.nickname", Category: CategoryGuild, Type: "property", Description: "Member's server nickname"},
	{Name: "member.roles", Category: CategoryGuild, Type: "property", Description: "Member's roles collection"},
	{Name: "member.joinedAt", Category: CategoryGuild, Type: "property", Description: "When member joined the server"},
	{Name: "member.permissions", Category: CategoryGuild, Type: "property", Description: "Member's permissions in the server"},
	{Name: "member.voice", Category: CategoryGuild, Type: "property", Description: "Member's voice state"},
	{Name: "member.presence", Category: CategoryGuild, Type: "property", Description: "Member's presence status"},
}
