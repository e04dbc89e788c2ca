package catalogue

var channelEntries = []Entry{
	{Name: "channel.id", Category: CategoryChannel, Type: "property", Description: "Channel's unique ID", Example: "123456789012345678"},
	{Name: "channel.name", Category: CategoryChannel, Type: "property", Description: "Channel's name", Example: "general"},
	{Name: "channel.type", Category: CategoryChannel, Type: "property", Description: "Channel type (text, voice, etc)"},
	{Name: "channel.topic", Category: CategoryChannel, Type: "property", Description: "Channel topic/description"},
	{Name: "channel.nsfw", Category: CategoryChannel, Type: "property", Description: "Whether channel is NSFW", Example: "false"},
	{Name: "channel.position", Category: CategoryChannel, Type: "property", Description: "Channel position in the list"},
	{Name: "channel.createdAt", Category: CategoryChannel, Type: "property", Description: "When channel was created"},
	{Name: "channel.parent", Category: CategoryChannel, Type: "property", Description: "Channel's parent category"},
	{Name: "channel.rateLimitPerUser", Category: CategoryChannel, Type: "property", Description: "Slowmode delay in seconds"},
	{Name: "channel.permissions", Category: CategoryChannel, Type: "property", Description: "Channel permission overwrites"},
	{Name: "channel.setName", Category: CategoryChannel, Type: "method", Description: "Rename the channel"},
	{Name: "channel.setTopic", Category: CategoryChannel, Type: "method", Description: "Change the channel topic"},
}
