package template

import "command-forge/internal/spec"

func init() {
	register(
		Unit{
			Name:        "8ball",
			Description: "Ask the magic 8ball a question",
			Category:    "fun",
			Options: []spec.OptionSpec{
				{Name: "question", Description: "Your question for the magic 8ball", Type: "string", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const responses = [
  'It is certain.',
  'It is decidedly so.',
  'Without a doubt.',
  'Yes, definitely.',
  'You may rely on it.',
  'As I see it, yes.',
  'Most likely.',
  'Outlook good.',
  'Yes.',
  'Signs point to yes.',
  'Reply hazy, try again.',
  'Ask again later.',
  'Better not tell you now.',
  'Cannot predict now.',
  'Concentrate and ask again.',
  'Don\'t count on it.',
  'My reply is no.',
  'My sources say no.',
  'Outlook not so good.',
  'Very doubtful.'
];

const question = interaction.options.getString('question');
const response = responses[Math.floor(Math.random() * responses.length)];

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setTitle('🎱 Magic 8Ball')
  .addFields(
    { name: 'Question', value: question },
    { name: 'Answer', value: response }
  )
  .setFooter({ text: ` + tick + `Asked by ${interaction.user.tag}` + tick + ` });

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "roll",
			Description: "Roll one or more dice",
			Category:    "fun",
			Options: []spec.OptionSpec{
				{Name: "dice", Description: "Number of dice to roll (1-10)", Type: "integer", Required: true},
				{Name: "sides", Description: "Number of sides per die (2-100)", Type: "integer"},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const diceCount = interaction.options.getInteger('dice');
const sides = interaction.options.getInteger('sides') || 6;

const rolls = [];
let total = 0;

for (let i = 0; i < diceCount; i++) {
  const roll = Math.floor(Math.random() * sides) + 1;
  rolls.push(roll);
  total += roll;
}

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setTitle('🎲 Dice Roll')
  .addFields(
    { name: 'Dice', value: ` + tick + `${diceCount}d${sides}` + tick + ` },
    { name: 'Rolls', value: rolls.join(', ') },
    { name: 'Total', value: total.toString() }
  )
  .setFooter({ text: ` + tick + `Rolled by ${interaction.user.tag}` + tick + ` });

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "rps",
			Description: "Play Rock, Paper, Scissors",
			Category:    "fun",
			Options: []spec.OptionSpec{
				{Name: "choice", Description: "Your choice (rock/paper/scissors)", Type: "string", Required: true, Choices: []spec.Choice{
					{Name: "Rock", Value: "rock"},
					{Name: "Paper", Value: "paper"},
					{Name: "Scissors", Value: "scissors"},
				}},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const choices = ['rock', 'paper', 'scissors'];
const botChoice = choices[Math.floor(Math.random() * choices.length)];
const playerChoice = interaction.options.getString('choice');

const emojis = {
  rock: '🪨',
  paper: '📄',
  scissors: '✂️'
};

let result;
if (playerChoice === botChoice) {
  result = "It's a tie!";
} else if (
  (playerChoice === 'rock' && botChoice === 'scissors') ||
  (playerChoice === 'paper' && botChoice === 'rock') ||
  (playerChoice === 'scissors' && botChoice === 'paper')
) {
  result = 'You win!';
} else {
  result = 'I win!';
}

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setTitle('Rock, Paper, Scissors')
  .addFields(
    { name: 'Your Choice', value: ` + tick + `${emojis[playerChoice]} ${playerChoice}` + tick + `, inline: true },
    { name: 'My Choice', value: ` + tick + `${emojis[botChoice]} ${botChoice}` + tick + `, inline: true },
    { name: 'Result', value: result }
  )
  .setFooter({ text: ` + tick + `Played with ${interaction.user.tag}` + tick + ` });

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "flip",
			Description: "Flip a coin",
			Category:    "fun",
			Generate: func(_ *spec.CommandSpec) string {
				return `const result = Math.random() < 0.5 ? 'Heads' : 'Tails';
const emoji = result === 'Heads' ? '🪙' : '💿';

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setTitle('Coin Flip')
  .setDescription(` + tick + `${emoji} The coin landed on **${result}**!` + tick + `)
  .setFooter({ text: ` + tick + `Flipped by ${interaction.user.tag}` + tick + ` });

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "quote",
			Description: "Get a random quote",
			Category:    "fun",
			Generate: func(_ *spec.CommandSpec) string {
				return `const quotes = [
  { text: "Be the change you wish to see in the world.", author: "Mahatma Gandhi" },
  { text: "The only way to do great work is to love what you do.", author: "Steve Jobs" },
  { text: "Life is what happens when you're busy making other plans.", author: "John Lennon" }
];

const quote = quotes[Math.floor(Math.random() * quotes.length)];

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setDescription(` + tick + `"${quote.text}"` + tick + `)
  .setFooter({ text: ` + tick + `- ${quote.author}` + tick + ` });

await interaction.reply({ embeds: [embed] });`
			},
		},
		Unit{
			Name:        "poll",
			Description: "Create a reaction poll",
			Category:    "fun",
			Options: []spec.OptionSpec{
				{Name: "question", Description: "Poll question", Type: "string", Required: true},
				{Name: "options", Description: "Poll options (comma separated)", Type: "string", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const question = interaction.options.getString('question');
const options = interaction.options.getString('options').split(',').map(opt => opt.trim());

if (options.length < 2 || options.length > 10) {
  return interaction.reply({
    content: 'Please provide between 2 and 10 options!',
    ephemeral: true
  });
}

const reactions = ['1️⃣', '2️⃣', '3️⃣', '4️⃣', '5️⃣', '6️⃣', '7️⃣', '8️⃣', '9️⃣', '🔟'];

const embed = new EmbedBuilder()
  .setColor(0x0099FF)
  .setTitle('📊 ' + question)
  .setDescription(
    options.map((opt, i) => ` + tick + `${reactions[i]} ${opt}` + tick + `).join('\n')
  )
  .setFooter({ text: ` + tick + `Poll started by ${interaction.user.tag}` + tick + ` });

const message = await interaction.reply({
  embeds: [embed],
  fetchReply: true
});

for (let i = 0; i < options.length; i++) {
  await message.react(reactions[i]);
}`
			},
		},
		Unit{
			Name:        "giveaway",
			Description: "Start a giveaway",
			Category:    "fun",
			Options: []spec.OptionSpec{
				{Name: "prize", Description: "What are you giving away?", Type: "string", Required: true},
				{Name: "duration", Description: "Duration in minutes", Type: "integer", Required: true},
			},
			Generate: func(_ *spec.CommandSpec) string {
				return `const prize = interaction.options.getString('prize');
const duration = interaction.options.getInteger('duration') * 60000;
const endTime = Date.now() + duration;

const embed = new EmbedBuilder()
  .setColor(0x00FF00)
  .setTitle('🎉 Giveaway!')
  .setDescription(` + tick + `
**Prize:** ${prize}
**Ends:** <t:${Math.floor(endTime / 1000)}:R>
React with 🎉 to enter!
` + tick + `)
  .setFooter({ text: ` + tick + `Started by ${interaction.user.tag}` + tick + ` });

const message = await interaction.reply({
  embeds: [embed],
  fetchReply: true
});

await message.react('🎉');

setTimeout(async () => {
  const fetchedMessage = await message.fetch();
  const reaction = fetchedMessage.reactions.cache.get('🎉');

  const users = await reaction.users.fetch();
  const validUsers = users.filter(user => !user.bot);

  if (validUsers.size === 0) {
    return message.reply('No valid entries for the giveaway!');
  }

  const winner = validUsers.random();

  const winEmbed = new EmbedBuilder()
    .setColor(0xFF0000)
    .setTitle('🎉 Giveaway Ended!')
    .setDescription(` + tick + `
**Prize:** ${prize}
**Winner:** <@${winner.id}>
` + tick + `);

  await message.reply({ embeds: [winEmbed] });
}, duration);`
			},
		},
	)
}
