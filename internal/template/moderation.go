package template

import "command-forge/internal/spec"

func init() {
	register(
		Unit{
			Name:        "kick",
			Description: "Kick a member from the server",
			Category:    "moderation",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to kick", Type: "user", Required: true},
				{Name: "reason", Description: "Reason for kick", Type: "string"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const targetUser = interaction.options.getUser('user');
const reason = interaction.options.getString('reason') || 'No reason provided';
const member = interaction.guild.members.cache.get(targetUser.id);

if (!member) {
  return interaction.reply({ content: 'User not found in this server.', ephemeral: true });
}

if (!member.kickable) {
  return interaction.reply({
    content: 'I cannot kick this user. Check if they have a higher role than me or if I have kick permissions.',
    ephemeral: true
  });
}

await member.kick(reason);

const embedKick = new EmbedBuilder()
  .setTitle('Member Kicked')
  .setColor(0xff0000)
  .setThumbnail(targetUser.displayAvatarURL())
  .addFields(
    { name: 'User', value: targetUser.tag },
    { name: 'Moderator', value: interaction.user.tag },
    { name: 'Reason', value: reason }
  )
  .setTimestamp();

await interaction.reply({ embeds: [embedKick] });`
			},
		},
		Unit{
			Name:        "ban",
			Description: "Ban a member from the server",
			Category:    "moderation",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to ban", Type: "user", Required: true},
				{Name: "reason", Description: "Reason for ban", Type: "string"},
				{Name: "days", Description: "Days of messages to delete", Type: "integer", Choices: []spec.Choice{
					{Name: "Don't delete any", Value: 0},
					{Name: "Previous 24 hours", Value: 1},
					{Name: "Previous 7 days", Value: 7},
				}},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const targetUser = interaction.options.getUser('user');
const reason = interaction.options.getString('reason') || 'No reason provided';
const days = interaction.options.getInteger('days') || 0;

await interaction.guild.members.ban(targetUser, {
  reason: reason,
  deleteMessageDays: days
});

const embedBan = new EmbedBuilder()
  .setTitle('Member Banned')
  .setColor(0xff0000)
  .setThumbnail(targetUser.displayAvatarURL())
  .addFields(
    { name: 'User', value: targetUser.tag },
    { name: 'Moderator', value: interaction.user.tag },
    { name: 'Reason', value: reason },
    { name: 'Message Deletion', value: ` + tick + `${days} days` + tick + ` }
  )
  .setTimestamp();

await interaction.reply({ embeds: [embedBan] });`
			},
		},
		Unit{
			Name:        "timeout",
			Description: "Timeout a member",
			Category:    "moderation",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to timeout", Type: "user", Required: true},
				{Name: "duration", Description: "Timeout duration in minutes", Type: "integer", Required: true},
				{Name: "reason", Description: "Reason for timeout", Type: "string"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const targetUser = interaction.options.getUser('user');
const duration = interaction.options.getInteger('duration');
const reason = interaction.options.getString('reason') || 'No reason provided';
const member = interaction.guild.members.cache.get(targetUser.id);

if (!member) {
  return interaction.reply({ content: 'User not found in this server.', ephemeral: true });
}

await member.timeout(duration * 60 * 1000, reason);

const embedTimeout = new EmbedBuilder()
  .setTitle('Member Timed Out')
  .setColor(0xffa500)
  .setThumbnail(targetUser.displayAvatarURL())
  .addFields(
    { name: 'User', value: targetUser.tag },
    { name: 'Moderator', value: interaction.user.tag },
    { name: 'Duration', value: ` + tick + `${duration} minutes` + tick + ` },
    { name: 'Reason', value: reason }
  )
  .setTimestamp();

await interaction.reply({ embeds: [embedTimeout] });`
			},
		},
		Unit{
			Name:        "warn",
			Description: "Warn a user",
			Category:    "moderation",
			Options: []spec.OptionSpec{
				{Name: "user", Description: "User to warn", Type: "user", Required: true},
				{Name: "reason", Description: "Reason for warning", Type: "string", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const targetUser = interaction.options.getUser('user');
const reason = interaction.options.getString('reason');
const member = interaction.guild.members.cache.get(targetUser.id);

if (!member) {
  return interaction.reply({ content: 'User not found in this server.', ephemeral: true });
}

const embed = new EmbedBuilder()
  .setTitle('User Warned')
  .setColor(0xFFD700)
  .setThumbnail(targetUser.displayAvatarURL())
  .addFields(
    { name: 'User', value: targetUser.tag, inline: true },
    { name: 'Moderator', value: interaction.user.tag, inline: true },
    { name: 'Reason', value: reason }
  )
  .setTimestamp();

await interaction.reply({ embeds: [embed] });

try {
  await targetUser.send({
    content: ` + tick + `You were warned in ${interaction.guild.name}\nReason: ${reason}` + tick + `
  });
} catch (err) {
  await interaction.followUp({
    content: 'Warning sent but unable to DM user.',
    ephemeral: true
  });
}`
			},
		},
		Unit{
			Name:        "purge",
			Description: "Delete multiple messages",
			Category:    "moderation",
			Options: []spec.OptionSpec{
				{Name: "amount", Description: "Number of messages to delete (1-100)", Type: "integer", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const amount = interaction.options.getInteger('amount');

const deleted = await interaction.channel.bulkDelete(amount, true);

const embed = new EmbedBuilder()
  .setTitle('Messages Purged')
  .setColor(0x00FF00)
  .setDescription(` + tick + `Successfully deleted ${deleted.size} messages` + tick + `)
  .setFooter({ text: ` + tick + `Requested by ${interaction.user.tag}` + tick + ` })
  .setTimestamp();

await interaction.reply({ embeds: [embed], ephemeral: true });`
			},
		},
	)
}
