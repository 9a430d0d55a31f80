package slides

const (
	FunctionalComponents = "functionalComponents"
	BasicButtons         = "basicButtons"
)

func init() {
	register(FunctionalComponents, functionalComponentsSlides)
	register(BasicButtons, basicButtonsSlides)
}

// Functional Components lesson
var functionalComponentsSlides = Deck{
	{
		ID:       1,
		Title:    "Functie Declaratie Basis",
		FileName: "src/components/Greeting.jsx",
		Code: `// Named function declaration
function Greeting() {
  return <h1>Hello, World!</h1>
}

// Arrow function declaration
const GreetingArrow = () => {
  return <h1>Hello, World!</h1>
}`,
		Description: "Twee manieren om een functioneel component te maken in React",
	},
	{
		ID:       2,
		Title:    "Verkorte Return Syntax",
		FileName: "src/components/Greeting.jsx",
		Code: `// Named function with explicit return
function Greeting() {
  return <h1>Hello, World!</h1>
}

// Arrow function with implicit return
const GreetingArrow = () => <h1>Hello, World!</h1>

// Both achieve the same result!`,
		Description: "Bij eenvoudige componenten kun je de verkorte return syntax gebruiken",
	},
	{
		ID:       3,
		Title:    "Logica Toevoegen",
		FileName: "src/components/Greeting.jsx",
		Code: `function Greeting() {
  // You can add logic before the return
  const name = "Developer"
  const timeOfDay = new Date().getHours() < 12 ? "morning" : "day"

  return (
    <div>
      <h1>Hello, {name}!</h1>
      <p>Have a great {timeOfDay}!</p>
    </div>
  )
}`,
		Description: "Hoe je logica kunt toevoegen voordat je JSX teruggeeft",
	},
	{
		ID:       4,
		Title:    "Named Exports",
		FileName: "src/components/Greeting.jsx",
		Code: `// greetings.jsx
export function Greeting() {
  return <h1>Hello, World!</h1>
}

export function Farewell() {
  return <h1>Goodbye!</h1>
}`,
		SecondaryCode: &CodeSnippet{
			Title:    "src/components/Greeting.jsx (Source Code)",
			FileName: "src/app/page.jsx",
			Code: `// app.jsx
import { Greeting, Farewell } from '@/components/Greeting'

export default function App() {
  return (
    <div>
      <Greeting />
      <Farewell />
    </div>
  )
}`,
		},
		Description: "Meerdere componenten exporteren vanuit één bestand",
	},
	{
		ID:       5,
		Title:    "Default Export",
		FileName: "src/components/Greeting.jsx",
		Code: `// greeting.jsx
function Greeting() {
  return <h1>Hello, World!</h1>
}

// Only one default export per file
export default Greeting`,
		SecondaryCode: &CodeSnippet{
			Title:    "src/components/Greeting.jsx (Source Code)",
			FileName: "src/app/page.jsx",
			Code: `// app.jsx
import Greeting from '@/components/Greeting'
// or
import CustomName from '@/components/Greeting'

export default function App() {
  return <Greeting />
}`,
		},
		Description: "Één hoofdcomponent exporteren uit een bestand",
	},
}

// Basic Button Components lesson
var basicButtonsSlides = Deck{
	{
		ID:       1,
		Title:    "Eenvoudige Button Component",
		FileName: "src/components/Button.jsx",
		Code: `function Button() {
  return (
    <button>
      Click me!
    </button>
  )
}`,
		Description: "Een basis button component maken",
	},
	{
		ID:       2,
		Title:    "Button met Text Property",
		FileName: "src/components/Button.jsx",
		Code: `function Button({ text }) {
  return (
    <button>
      {text}
    </button>
  )
}`,
		SecondaryCode: &CodeSnippet{
			Title:    "src/components/Button.jsx (Source Code)",
			FileName: "src/app/page.jsx",
			Code: `function App() {
  return (
    <div>
      <Button text="Click me!" />
      <Button text="Submit" />
    </div>
  )
}`,
		},
		Description: "Een property toevoegen om de button tekst aan te passen",
	},
	{
		ID:       3,
		Title:    "Button met Click Handler",
		FileName: "src/components/Button.jsx",
		Code: `function Button({ text, onClick }) {
  return (
    <button onClick={onClick}>
      {text}
    </button>
  )
}`,
		SecondaryCode: &CodeSnippet{
			Title:    "src/app/page.jsx (Using the Component)",
			FileName: "src/app/page.jsx",
			Code: `function App() {
  const handleClick = () => {
    alert('Button clicked!')
  }

  return (
    <Button
      text="Click me!"
      onClick={handleClick}
    />
  )
}`,
		},
		Description: "Een click handler toevoegen om de button interactief te maken",
	},
	{
		ID:       4,
		Title:    "Button met Properties",
		FileName: "src/components/Button.jsx",
		Code: `function Button({ text, onClick, disabled }) {
  return (
    <button
      onClick={onClick}
      disabled={disabled}
    >
      {text}
    </button>
  )
}`,
		SecondaryCode: &CodeSnippet{
			Title:    "src/app/page.jsx (Implementation Example)",
			FileName: "src/app/page.jsx",
			Code: `function App() {
  const handleClick = () => {
    console.log('Clicked!')
  }

  return (
    <div>
      <Button
        text="Click me!"
        onClick={handleClick}
      />
      <Button
        text="Disabled Button"
        disabled={true}
      />
    </div>
  )
}`,
		},
		Description: "Extra properties toevoegen aan de button component",
	},
}
