package template

import "command-forge/internal/spec"

func init() {
	register(
		Unit{
			Name:        "userinfo",
			Description: "Display user information",
			Category:    "utility",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to get info about", Type: "user"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const targetUser = interaction.options.getUser('user') || interaction.user;
const member = interaction.guild.members.cache.get(targetUser.id);

const roles = member ?
  member.roles.cache
    .filter(role => role.id !== interaction.guild.id)
    .map(role => role.toString())
    .join(', ') || 'None'
  : 'N/A';

const embed = new EmbedBuilder()
  .setTitle(` + tick + `User Info - ${targetUser.tag}` + tick + `)
  .setThumbnail(targetUser.displayAvatarURL({ dynamic: true }))
  .setColor(member?.displayColor || '#0099ff')
  .addFields([
    { name: 'User ID', value: targetUser.id, inline: true },
    { name: 'Nickname', value: member?.nickname || 'None', inline: true },
    { name: 'Bot', value: targetUser.bot ? 'Yes' : 'No', inline: true },
    { name: 'Account Created', value: ` + tick + `<t:${Math.floor(targetUser.createdTimestamp / 1000)}:R>` + tick + `, inline: true },
    { name: 'Joined Server', value: member ? ` + tick + `<t:${Math.floor(member.joinedTimestamp / 1000)}:R>` + tick + ` : 'N/A', inline: true },
    { name: ` + tick + `Roles [${member?.roles.cache.size - 1 || 0}]` + tick + `, value: roles.substring(0, 1024) }
  ]);

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "serverinfo",
			Description: "Display server information",
			Category:    "utility",
			Generate: func(_ *spec.CommandSpec) string {
				return `const { guild } = interaction;
const embed = new EmbedBuilder()
  .setTitle(guild.name)
  .setThumbnail(guild.iconURL({ dynamic: true }))
  .setColor('#0099ff')
  .addFields([
    { name: 'Owner', value: ` + tick + `<@${guild.ownerId}>` + tick + `, inline: true },
    { name: 'Created', value: ` + tick + `<t:${Math.floor(guild.createdTimestamp / 1000)}:R>` + tick + `, inline: true },
    { name: 'Members', value: ` + tick + `Total: ${guild.memberCount}` + tick + `, inline: true },
    { name: 'Channels', value: ` + tick + `${guild.channels.cache.size} total` + tick + `, inline: true },
    { name: 'Roles', value: ` + tick + `${guild.roles.cache.size} roles` + tick + `, inline: true },
    { name: 'Boost Level', value: ` + tick + `Level ${guild.premiumTier}` + tick + `, inline: true }
  ]);

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "avatar",
			Description: "Get user's avatar",
			Category:    "utility",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to get avatar from", Type: "user"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const user = interaction.options.getUser('user') || interaction.user;
const embed = new EmbedBuilder()
  .setTitle(` + tick + `${user.tag}'s Avatar` + tick + `)
  .setImage(user.displayAvatarURL({ size: 4096, dynamic: true }))
  .setColor('#0099ff');

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "roleinfo",
			Description: "Display role information",
			Category:    "utility",
			Options: []spec.OptionSpec{
				{Name: "role", Description: "Role to get info about", Type: "role", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const role = interaction.options.getRole('role');
const members = role.members.size;

const perms = role.permissions.toArray()
  .map(p => p.replace(/([A-Z])/g, ' $1').trim())
  .join(', ') || 'None';

const embed = new EmbedBuilder()
  .setTitle(role.name)
  .setColor(role.color || 0x0099FF)
  .addFields([
    { name: 'Role ID', value: role.id, inline: true },
    { name: 'Created', value: ` + tick + `<t:${Math.floor(role.createdTimestamp / 1000)}:R>` + tick + `, inline: true },
    { name: 'Position', value: ` + tick + `${role.position}` + tick + `, inline: true },
    { name: 'Color', value: ` + tick + `${role.hexColor}` + tick + `, inline: true },
    { name: 'Mentionable', value: role.mentionable ? 'Yes' : 'No', inline: true },
    { name: 'Hoisted', value: role.hoist ? 'Yes' : 'No', inline: true },
    { name: ` + tick + `Members [${members}]` + tick + `, value: members === 0 ? 'No members' : ` + tick + `${members} members` + tick + ` },
    { name: 'Permissions', value: perms.substring(0, 1024) }
  ]);

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "channelinfo",
			Description: "Display channel information",
			Category:    "utility",
			Options: []spec.OptionSpec{
				{Name: "channel", Description: "Channel to get info about", Type: "channel"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const channel = interaction.options.getChannel('channel') || interaction.channel;

const types = {
  [ChannelType.GuildText]: 'Text Channel',
  [ChannelType.GuildVoice]: 'Voice Channel',
  [ChannelType.GuildCategory]: 'Category',
  [ChannelType.GuildAnnouncement]: 'Announcement Channel',
  [ChannelType.PublicThread]: 'Public Thread',
  [ChannelType.PrivateThread]: 'Private Thread',
  [ChannelType.GuildStageVoice]: 'Stage Channel',
  [ChannelType.GuildForum]: 'Forum Channel'
};

const embed = new EmbedBuilder()
  .setTitle(channel.name)
  .setColor(0x0099FF)
  .addFields([
    { name: 'Channel ID', value: channel.id, inline: true },
    { name: 'Type', value: types[channel.type] || 'Unknown', inline: true },
    { name: 'Category', value: channel.parent?.name || 'None', inline: true },
    { name: 'Created', value: ` + tick + `<t:${Math.floor(channel.createdTimestamp / 1000)}:R>` + tick + `, inline: true },
    { name: 'Position', value: ` + tick + `${channel.position}` + tick + `, inline: true }
  ]);

if (channel.type === ChannelType.GuildText) {
  embed.addFields([
    { name: 'Topic', value: channel.topic || 'No topic set', inline: false },
    { name: 'NSFW', value: channel.nsfw ? 'Yes' : 'No', inline: true },
    { name: 'Slowmode', value: ` + tick + `${channel.rateLimitPerUser}s` + tick + `, inline: true }
  ]);
}

await interaction.reply({ embeds: [embed] });`
			},
		},
	)
}
