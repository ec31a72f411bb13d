package vtree

// Element factories for the common HTML vocabulary. Each takes the same
// variadic arguments as El.

// Document structure

// Div creates a <div> element.
func Div(args ...any) *Node { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *Node { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *Node { return El("p", args...) }

// Main creates a <main> element.
func Main(args ...any) *Node { return El("main", args...) }

// Section creates a <section> element.
func Section(args ...any) *Node { return El("section", args...) }

// Article creates an <article> element.
func Article(args ...any) *Node { return El("article", args...) }

// Header creates a <header> element.
func Header(args ...any) *Node { return El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *Node { return El("footer", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *Node { return El("nav", args...) }

// Aside creates an <aside> element.
func Aside(args ...any) *Node { return El("aside", args...) }

// Headings

// H1 creates an <h1> element.
func H1(args ...any) *Node { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *Node { return El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *Node { return El("h3", args...) }

// H4 creates an <h4> element.
func H4(args ...any) *Node { return El("h4", args...) }

// Lists

// Ul creates a <ul> element.
func Ul(args ...any) *Node { return El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *Node { return El("ol", args...) }

// Li creates a <li> element.
func Li(args ...any) *Node { return El("li", args...) }

// Tables

// Table creates a <table> element.
func Table(args ...any) *Node { return El("table", args...) }

// Thead creates a <thead> element.
func Thead(args ...any) *Node { return El("thead", args...) }

// Tbody creates a <tbody> element.
func Tbody(args ...any) *Node { return El("tbody", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *Node { return El("tr", args...) }

// Th creates a <th> element.
func Th(args ...any) *Node { return El("th", args...) }

// Td creates a <td> element.
func Td(args ...any) *Node { return El("td", args...) }

// Forms

// Form creates a <form> element.
func Form(args ...any) *Node { return El("form", args...) }

// Input creates an <input> element.
func Input(args ...any) *Node { return El("input", args...) }

// TextArea creates a <textarea> element.
func TextArea(args ...any) *Node { return El("textarea", args...) }

// Select creates a <select> element.
func Select(args ...any) *Node { return El("select", args...) }

// Option creates an <option> element.
func Option(args ...any) *Node { return El("option", args...) }

// Label creates a <label> element.
func Label(args ...any) *Node { return El("label", args...) }

// Button creates a <button> element.
func Button(args ...any) *Node { return El("button", args...) }

// Inline

// A creates an <a> element.
func A(args ...any) *Node { return El("a", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *Node { return El("strong", args...) }

// Em creates an <em> element.
func Em(args ...any) *Node { return El("em", args...) }

// Code creates a <code> element.
func Code(args ...any) *Node { return El("code", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *Node { return El("pre", args...) }

// Media

// Img creates an <img> element.
func Img(args ...any) *Node { return El("img", args...) }
