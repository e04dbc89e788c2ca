package template

import (
	"fmt"
	"strconv"
	"strings"

	"command-forge/internal/spec"
)

func init() {
	register(
		Unit{
			Name:        "reply",
			Description: "Simple text reply command",
			Category:    "basic",
			Generate: func(data *spec.CommandSpec) string {
				return fmt.Sprintf("await interaction.reply(%s);", strconv.Quote(data.Content))
			},
		},
		Unit{
			Name:        "embed",
			Description: "Simple embed reply command",
			Category:    "basic",
			Generate: func(data *spec.CommandSpec) string {
				title, description, color := "", data.Content, "#0099ff"
				for _, line := range strings.Split(data.Content, "\n") {
					switch {
					case strings.HasPrefix(line, "title:"):
						title = strings.TrimSpace(line[len("title:"):])
					case strings.HasPrefix(line, "description:"):
						description = strings.TrimSpace(line[len("description:"):])
					case strings.HasPrefix(line, "color:"):
						color = strings.TrimSpace(line[len("color:"):])
					}
				}
				return fmt.Sprintf(`const embed = new EmbedBuilder()
  .setTitle(%s)
  .setDescription(%s)
  .setColor('%s');

await interaction.reply({ embeds: [embed] });`,
					strconv.Quote(title), strconv.Quote(description), color)
			},
		},
		Unit{
			Name:        "echo",
			Description: "Echo back user input",
			Category:    "basic",
			Options: []spec.OptionSpec{
				{Name: "message", Description: "Message to echo", Type: "string", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const message = interaction.options.getString('message');
await interaction.reply(` + tick + `You said: ${message}` + tick + `);`
			},
		},
		Unit{
			Name:        "ping",
			Description: "Check bot latency",
			Category:    "basic",
			Generate: func(_ *spec.CommandSpec) string {
				return `const sent = await interaction.reply({
  content: 'Pinging...',
  fetchReply: true
});
const latency = sent.createdTimestamp - interaction.createdTimestamp;
await interaction.editReply(
  ` + tick + `Pong! Bot Latency: ${latency}ms, API Latency: ${interaction.client.ws.ping}ms` + tick + `
);`
			},
		},
	)
}
