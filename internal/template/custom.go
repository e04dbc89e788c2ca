package template

import (
	"fmt"
	"strings"

	"command-forge/internal/spec"
)

func init() {
	register(
		Unit{
			Name:        "advanced",
			Description: "Custom command with permission and cooldown gates",
			Category:    "custom",
			Generate: func(data *spec.CommandSpec) string {
				var b strings.Builder

				if len(data.Permissions) > 0 {
					fmt.Fprintf(&b, `if (!interaction.member.permissions.has(['%s'])) {
  return interaction.reply({ content: 'You do not have permission to use this command.', ephemeral: true });
}

`, strings.Join(data.Permissions, "', '"))
				}

				if data.Cooldown > 0 {
					b.WriteString(`const cooldownKey = ` + tick + `${interaction.commandName}-${interaction.user.id}` + tick + `;
if (cooldowns.has(cooldownKey)) {
  const timeLeft = Math.ceil((cooldowns.get(cooldownKey) - Date.now()) / 1000);
  return interaction.reply({ content: ` + tick + `Please wait ${timeLeft} seconds before using this command again.` + tick + `, ephemeral: true });
}

`)
				}

				content := data.Content
				if content == "" {
					content = "Done!"
				}
				fmt.Fprintf(&b, "await interaction.reply(`%s`);\n", content)

				if data.Cooldown > 0 {
					ms := data.Cooldown * 1000
					fmt.Fprintf(&b, `
cooldowns.set(cooldownKey, Date.now() + %d);
setTimeout(() => cooldowns.delete(cooldownKey), %d);
`, ms, ms)
				}

				return b.String()
			},
		},
		Unit{
			Name:        "simple",
			Description: "Simple custom command template",
			Category:    "custom",
			Generate: func(data *spec.CommandSpec) string {
				content := data.Content
				if content == "" {
					content = "Hello!"
				}
				if data.ResponseType == spec.RespondEmbed {
					return fmt.Sprintf(`const embed = new EmbedBuilder()
  .setDescription('%s')
  .setColor('#0099ff');
await interaction.reply({ embeds: [embed] });`, strings.ReplaceAll(content, "'", "\\'"))
				}
				return fmt.Sprintf("await interaction.reply('%s');", strings.ReplaceAll(content, "'", "\\'"))
			},
		},
	)
}
