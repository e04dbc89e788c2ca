package catalogue

var messageEntries = []Entry{
	{Name: "message.id", Category: CategoryMessage, Type: "property", Description: "Message ID"},
	{Name: "message.content", Category: CategoryMessage, Type: "property", Description: "Message text content", Example: "Hello everyone!"},
	{Name: "message.author", Category: CategoryMessage, Type: "property", Description: "User who sent the message"},
	{Name: "message.author.id", Category: CategoryMessage, Type: "property", Description: "Author's Discord ID"},
	{Name: "message.author.username", Category: CategoryMessage, Type: "property", Description: "Author's username"},
	{Name: "message.author.bot", Category: CategoryMessage, Type: "property", Description: "Whether author is a bot"},
	{Name: "message.member", Category: CategoryMessage, Type: "property", Description: "Guild member object of the author"},
	{Name: "message.guild", Category: CategoryMessage, Type: "property", Description: "Server where message was sent"},
	{Name: "message.channel", Category: CategoryMessage, Type: "property", Description: "Channel where message was sent"},
	{Name: "message.createdAt", Category: CategoryMessage, Type: "property", Description: "When message was created"},
	{Name: "message.editedAt", Category: CategoryMessage, Type: "property", Description: "When message was last edited"},
	{Name: "message.attachments", Category: CategoryMessage, Type: "property", Description: "Message attachments"},
	{Name: "message.embeds", Category: CategoryMessage, Type: "property", Description: "Message embeds"},
	{Name: "message.mentions", Category: CategoryMessage, Type: "property", Description: "Users mentioned in the message"},
	{Name: "message.reactions", Category: CategoryMessage, Type: "property", Description: "Message reactions"},
	{Name: "message.url", Category: CategoryMessage, Type: "property", Description: "Direct link to the message"},
	{Name: "message.pin", Category: CategoryMessage, Type: "method", Description: "Pin the message in its channel"},
}
