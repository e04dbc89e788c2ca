package generator

import (
	"fmt"
	"strings"

	"command-forge/internal/spec"
)

// buildResponse emits the single response statement used when a spec
// has neither template nor actions. Content is interpolated before
// literal construction so recognized tokens end up inside a template
// literal.
func buildResponse(content, responseType string) string {
	processed := interpolate(content)

	switch responseType {
	case spec.RespondReply:
		return fmt.Sprintf("await interaction.reply(%s);\n", formatValue(processed))
	case spec.RespondSend:
		return fmt.Sprintf("await channel.send(%s);\n", formatValue(processed))
	case spec.RespondEmbed:
		return buildEmbedResponse(processed)
	case spec.RespondDM:
		return fmt.Sprintf("await interaction.user.send(%s);\n", formatValue(processed))
	default:
		return fmt.Sprintf("await interaction.reply(%s);\n", formatValue(processed))
	}
}

// embedContent is the parsed form of embed-shaped content: one
// `key: value` line per field, prefix-matched, unrecognized lines
// ignored.
type embedContent struct {
	Title       string
	Description string
	Color       string
	Footer      string
	Image       string
	Thumbnail   string
}

func parseEmbedContent(content string) embedContent {
	var embed embedContent
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "title:"):
			embed.Title = strings.TrimSpace(line[len("title:"):])
		case strings.HasPrefix(line, "description:"):
			embed.Description = strings.TrimSpace(line[len("description:"):])
		case strings.HasPrefix(line, "color:"):
			embed.Color = strings.TrimSpace(line[len("color:"):])
		case strings.HasPrefix(line, "footer:"):
			embed.Footer = strings.TrimSpace(line[len("footer:"):])
		case strings.HasPrefix(line, "image:"):
			embed.Image = strings.TrimSpace(line[len("image:"):])
		case strings.HasPrefix(line, "thumbnail:"):
			embed.Thumbnail = strings.TrimSpace(line[len("thumbnail:"):])
		}
	}
	return embed
}

// buildEmbedResponse maps recognized embed keys 1:1 to builder calls.
// Absent keys emit nothing.
func buildEmbedResponse(content string) string {
	embed := parseEmbedContent(content)

	var b strings.Builder
	b.WriteString("const { EmbedBuilder } = require(\"discord.js\");\n")
	b.WriteString("const embed = new EmbedBuilder()\n")

	if embed.Title != "" {
		fmt.Fprintf(&b, ".setTitle(%s)\n", formatValue(embed.Title))
	}
	if embed.Description != "" {
		fmt.Fprintf(&b, ".setDescription(%s)\n", formatValue(embed.Description))
	}
	if embed.Color != "" {
		fmt.Fprintf(&b, ".setColor('%s')\n", embed.Color)
	}
	if embed.Footer != "" {
		fmt.Fprintf(&b, ".setFooter({text: %s})\n", formatValue(embed.Footer))
	}
	if embed.Image != "" {
		fmt.Fprintf(&b, ".setImage(%s)\n", formatValue(embed.Image))
	}
	if embed.Thumbnail != "" {
		fmt.Fprintf(&b, ".setThumbnail(%s)\n", formatValue(embed.Thumbnail))
	}

	b.WriteString(";\nawait interaction.reply({embeds: [embed]});\n")
	return b.String()
}
