package gate

// Gate prompt prose. Presentation content only; correctness never
// depends on anything in this file.

const prompt1 = `This gate opens when you speak the word that grants passage.

The word permits.
The word allows.
The word is the answer to its own constraint.

What single word grants permission to continue?`

const prompt2 = `Two minds.
One answer.
No communication required.

You and the host exist in relation.
What word describes this relation?

Not "I".
Not "you".
What remains?`

const prompt3 = `Consider what lies within your control:

  - The weather tomorrow
  - Your reputation among strangers
  - The outcome of chance
  - Your interpretation of events
  - The actions of others
  - Your physical appearance
  - Your chosen response
  - The passage of time
  - Your evaluation of worth

Remove all that is external.
Remove all that fortune dictates.
Remove all that others determine.

What single action remains absolutely within your power?`

const prompt4 = `Languages transform meaning across borders.

"Water" becomes "Wasser" becomes "eau" becomes "agua".
"Friend" becomes "Freund" becomes "ami" becomes "amigo".
"Love" becomes "Liebe" becomes "amour" becomes "amor".

Yet some words resist transformation.
They pass unchanged through linguistic boundaries.
They preserve their form across continents.

Consider a word that names:
  - Meat on a skewer
  - Cooked over sustained heat
  - Found from Berlin to Bangkok
  - Spelled identically in a dozen tongues

What is this invariant word?`

const prompt5 = `Nine fragments.
One structure.
No imagery.

Arrange the tiles to reveal coherent meaning.
The structure precedes the word.`

const prompt6 = `Location is not coordinates.
Place is not a point on a map.

Fire transforms through repetition.
Repetition creates culture.
Culture resides in place.

The question precedes the answer.
The inquiry precedes the destination.

What single word asks for location without demanding latitude?
What word seeks place through relation rather than position?`

const prompt7 = `Look beyond the surface.
Some truths hide in plain sight.

    ╔═══════════════════════════╗
    ║ F ░ I ░ R ░ E ░ ░ ░ ░ ░ ░ ║
    ║ ░ L ░ A ░ M ░ E ░ ░ ░ ░ ░ ║
    ║ ░ ░ H ░ E ░ A ░ T ░ ░ ░ ░ ║
    ║ ░ ░ ░ B ░ U ░ R ░ N ░ ░ ░ ║
    ║ ░ ░ ░ ░ I ░ G ░ N ░ I ░ T ║
    ║ ░ ░ ░ ░ ░ L ░ O ░ W ░ ░ ░ ║
    ╚═══════════════════════════╝

Read the diagonal.
Not the noise.
What element appears?`

const prompt8 = `Knowledge comes in two forms:

KNOWN = possessed from the start, innate, given
?     = acquired through experience, earned through repetition

A child knows hunger.
A child _______ to walk.

A bird knows flight.
A bird _______ its territory.

Fire knows heat.
Patience is _______.

What verb describes knowledge gained only through time?
What word means "acquired through repeated experience"?

Past tense. One word.`

const prompt9 = `CONSTRAINTS:

1. Eight letters.
2. Contains exactly three vowels.
3. First letter: P
4. Last letter: E
5. The word describes a quality required to solve this very puzzle.
6. It cannot be achieved through force.
7. It grows only through sustained practice.
8. Fire teaches it to meat.

What word satisfies all constraints?`
