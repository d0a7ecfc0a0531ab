package curriculum

import "github.com/goliatone/go-curriculum/domain"

// BuiltinSections returns the sections shipped with the module, ordered from
// introductory to advanced.
func BuiltinSections() []Section {
	return append([]Section(nil), builtinSections...)
}

// BuiltinTopics returns the C# curriculum shipped with the module. Callers
// receive a fresh slice on every call so the literals below stay pristine.
func BuiltinTopics() []Topic {
	out := make([]Topic, len(builtinTopics))
	copy(out, builtinTopics)
	return out
}

var builtinSections = []Section{
	{ID: "beginner", Name: "Beginner", Position: 1, Level: domain.LevelBeginner},
	{ID: "intermediate", Name: "Intermediate", Position: 2, Level: domain.LevelIntermediate},
	{ID: "advanced", Name: "Advanced", Position: 3, Level: domain.LevelAdvanced},
}

// builtinTopics is inert presentation content. The catalog treats every
// payload string as opaque; nothing here is parsed, rendered, or compiled.
var builtinTopics = []Topic{
	{
		ID:        "variables",
		Name:      "Variables and Data Types",
		SectionID: "beginner",
		Slug:      "variables-and-data-types",
		Explanation: `<p>C# is a statically typed language: every variable has a type known at compile time. The most common built-in types are <code>int</code>, <code>double</code>, <code>bool</code>, <code>char</code>, and <code>string</code>.</p>
<p>The <code>var</code> keyword asks the compiler to infer the type from the initializer. The variable is still strongly typed; <code>var</code> only saves you from writing the type twice.</p>`,
		CodeExample: `int age = 30;
double price = 19.99;
bool isActive = true;
string name = "Ada";

// Type inference: count is an int.
var count = 42;

Console.WriteLine($"{name} is {age} years old");`,
		KeyPoints: []string{
			"Every variable has a compile-time type",
			"var infers the type from the initializer, it is not dynamic",
			"string interpolation uses the $\"...\" prefix",
			"Value types hold data directly, reference types hold a reference",
		},
		Exercise: "Declare variables for a product: name (string), unit price (double), and stock count (int). Print a sentence describing the product using string interpolation.",
	},
	{
		ID:        "operators",
		Name:      "Operators",
		SectionID: "beginner",
		Slug:      "operators",
		Explanation: `<p>C# provides arithmetic (<code>+ - * / %</code>), comparison (<code>== != &lt; &gt;</code>), and logical (<code>&amp;&amp; || !</code>) operators. Integer division truncates; use a floating-point operand to keep the fraction.</p>
<p>The null-coalescing operator <code>??</code> returns its left operand unless it is <code>null</code>, and the ternary operator <code>?:</code> picks between two expressions.</p>`,
		CodeExample: `int a = 7, b = 2;

Console.WriteLine(a / b);        // 3, integer division
Console.WriteLine(a / (double)b); // 3.5

string? nickname = null;
string display = nickname ?? "anonymous";

string verdict = a > b ? "bigger" : "smaller";`,
		KeyPoints: []string{
			"Integer division truncates toward zero",
			"% returns the remainder, useful for even/odd checks",
			"?? supplies a fallback for null values",
			"&& and || short-circuit evaluation",
		},
		Exercise: "Write an expression that given a total number of minutes prints hours and remaining minutes, e.g. 135 minutes becomes \"2h 15m\".",
	},
	{
		ID:        "control-flow",
		Name:      "Control Flow",
		SectionID: "beginner",
		Slug:      "control-flow",
		Explanation: `<p>Branching in C# uses <code>if</code>/<code>else</code> and <code>switch</code>. Modern switch statements support pattern matching and the terse switch expression form introduced in C# 8.</p>`,
		CodeExample: `int score = 87;

string grade = score switch
{
    >= 90 => "A",
    >= 80 => "B",
    >= 70 => "C",
    _     => "F",
};

if (grade == "A")
{
    Console.WriteLine("Excellent!");
}
else
{
    Console.WriteLine($"Grade: {grade}");
}`,
		KeyPoints: []string{
			"if/else chains evaluate conditions top to bottom",
			"switch expressions return a value and must be exhaustive",
			"Relational patterns like >= 90 read naturally in switch arms",
			"_ is the discard pattern, matching anything",
		},
		Exercise: "Using a switch expression, map an int day number (1-7) to its weekday name; return \"unknown\" for anything else.",
	},
	{
		ID:        "loops",
		Name:      "Loops",
		SectionID: "beginner",
		Slug:      "loops",
		Explanation: `<p>C# has four loop constructs: <code>for</code>, <code>foreach</code>, <code>while</code>, and <code>do-while</code>. Prefer <code>foreach</code> when iterating a collection; it avoids index bookkeeping and off-by-one errors.</p>`,
		CodeExample: `var names = new[] { "Ada", "Linus", "Grace" };

foreach (var name in names)
{
    Console.WriteLine(name);
}

for (int i = 0; i < 3; i++)
{
    Console.WriteLine($"iteration {i}");
}

int n = 3;
while (n > 0)
{
    n--;
}`,
		KeyPoints: []string{
			"foreach iterates any IEnumerable without index management",
			"for gives full control over initialization, condition, and step",
			"do-while always runs the body at least once",
			"break exits a loop, continue skips to the next iteration",
		},
		Exercise: "Print the first ten numbers of the Fibonacci sequence using a for loop.",
	},
	{
		ID:        "methods",
		Name:      "Methods",
		SectionID: "beginner",
		Slug:      "methods",
		Explanation: `<p>Methods encapsulate behavior. A signature lists the return type, name, and parameters. C# supports optional parameters, named arguments, and expression-bodied members for one-liners.</p>
<p>Parameters are passed by value unless marked <code>ref</code> or <code>out</code>.</p>`,
		CodeExample: `static int Add(int x, int y) => x + y;

static string Greet(string name, string greeting = "Hello")
{
    return $"{greeting}, {name}!";
}

static bool TryParsePort(string raw, out int port)
{
    return int.TryParse(raw, out port) && port > 0 && port < 65536;
}

Console.WriteLine(Add(2, 3));
Console.WriteLine(Greet("Ada"));
Console.WriteLine(Greet(name: "Grace", greeting: "Hi"));`,
		KeyPoints: []string{
			"Expression-bodied methods use => for single expressions",
			"Optional parameters declare a default value in the signature",
			"out parameters let a method return more than one value",
			"Named arguments make call sites self-documenting",
		},
		Exercise: "Write a method IsLeapYear(int year) that returns whether the year is a leap year, then test it with 1900, 2000, and 2024.",
	},
	{
		ID:        "classes",
		Name:      "Classes and Objects",
		SectionID: "intermediate",
		Slug:      "classes-and-objects",
		Explanation: `<p>A class bundles state (fields, properties) and behavior (methods). Auto-properties generate the backing field for you, and constructors establish invariants at creation time.</p>
<p>Records (C# 9) are a concise alternative for immutable data carriers with value-based equality.</p>`,
		CodeExample: `public class BankAccount
{
    public string Owner { get; }
    public decimal Balance { get; private set; }

    public BankAccount(string owner, decimal openingBalance)
    {
        Owner = owner;
        Balance = openingBalance;
    }

    public void Deposit(decimal amount)
    {
        if (amount <= 0)
            throw new ArgumentOutOfRangeException(nameof(amount));
        Balance += amount;
    }
}

public record Point(int X, int Y);`,
		KeyPoints: []string{
			"Auto-properties replace boilerplate getter/setter pairs",
			"Constructors enforce invariants before an object exists",
			"private set restricts mutation to the class itself",
			"Records get value equality and a deconstructor for free",
		},
		Exercise: "Model a Rectangle class with Width and Height properties and an Area computed property. Reject non-positive dimensions in the constructor.",
	},
	{
		ID:        "inheritance",
		Name:      "Inheritance and Polymorphism",
		SectionID: "intermediate",
		Slug:      "inheritance",
		Explanation: `<p>A derived class extends a base class with <code>:</code>. Mark base methods <code>virtual</code> so derived classes can <code>override</code> them; calls dispatch to the runtime type.</p>
<p>Use <code>abstract</code> classes for shared contracts with partial implementations, and prefer composition when the relationship is not strictly "is-a".</p>`,
		CodeExample: `public abstract class Shape
{
    public abstract double Area();

    public virtual string Describe() => $"shape with area {Area():F2}";
}

public class Circle : Shape
{
    public double Radius { get; init; }

    public override double Area() => Math.PI * Radius * Radius;

    public override string Describe() => $"circle, r={Radius}";
}

Shape shape = new Circle { Radius = 2 };
Console.WriteLine(shape.Describe()); // dispatches to Circle`,
		KeyPoints: []string{
			"virtual/override enables runtime dispatch",
			"abstract members force derived classes to implement them",
			"A base-typed variable can hold any derived instance",
			"sealed stops further overriding or derivation",
		},
		Exercise: "Add a Square class to the Shape hierarchy and write a method that sums the areas of a List<Shape> without knowing concrete types.",
	},
	{
		ID:        "interfaces",
		Name:      "Interfaces",
		SectionID: "intermediate",
		Slug:      "interfaces",
		Explanation: `<p>An interface declares capability without implementation. Types implement any number of interfaces, which keeps consumers coupled to contracts instead of concrete classes — the foundation of testable designs.</p>`,
		CodeExample: `public interface INotifier
{
    void Notify(string recipient, string message);
}

public class EmailNotifier : INotifier
{
    public void Notify(string recipient, string message)
        => Console.WriteLine($"email to {recipient}: {message}");
}

public class OrderService
{
    private readonly INotifier _notifier;

    public OrderService(INotifier notifier) => _notifier = notifier;

    public void Complete(string customer)
        => _notifier.Notify(customer, "Your order shipped!");
}`,
		KeyPoints: []string{
			"Interfaces describe what a type can do, not what it is",
			"A class can implement multiple interfaces",
			"Constructor injection of interfaces enables test doubles",
			"Default interface methods exist but are rarely needed",
		},
		Exercise: "Define an IShippingCalculator interface with a Cost(decimal weight) method and provide two implementations: flat rate and per-kilogram.",
	},
	{
		ID:        "collections",
		Name:      "Collections",
		SectionID: "intermediate",
		Slug:      "collections",
		Explanation: `<p><code>List&lt;T&gt;</code> is a growable array, <code>Dictionary&lt;TKey, TValue&gt;</code> maps keys to values with O(1) lookup, and <code>HashSet&lt;T&gt;</code> stores unique items. All live in <code>System.Collections.Generic</code>.</p>`,
		CodeExample: `var scores = new Dictionary<string, int>
{
    ["ada"] = 95,
    ["grace"] = 88,
};

scores["linus"] = 91;

if (scores.TryGetValue("ada", out int adaScore))
{
    Console.WriteLine($"ada: {adaScore}");
}

var visited = new HashSet<string>();
visited.Add("home");
visited.Add("home"); // ignored, already present

var queue = new List<string> { "first", "second" };
queue.RemoveAt(0);`,
		KeyPoints: []string{
			"List<T> preserves insertion order and allows duplicates",
			"TryGetValue avoids a KeyNotFoundException on missing keys",
			"HashSet<T> silently ignores duplicate additions",
			"Pick the collection by access pattern, not by habit",
		},
		Exercise: "Count word frequencies in a sentence using a Dictionary<string, int>, then print words that occur more than once.",
	},
	{
		ID:        "exceptions",
		Name:      "Exception Handling",
		SectionID: "intermediate",
		Slug:      "exception-handling",
		Explanation: `<p>Exceptions signal failures that callers cannot ignore. Catch the most specific exception type you can handle, use <code>finally</code> (or <code>using</code>) for cleanup, and throw with <code>throw;</code> to preserve the stack trace when re-raising.</p>`,
		CodeExample: `try
{
    var text = File.ReadAllText("settings.json");
    var port = int.Parse(text);
}
catch (FileNotFoundException)
{
    Console.WriteLine("settings.json missing, using defaults");
}
catch (FormatException ex)
{
    Console.WriteLine($"bad settings value: {ex.Message}");
    throw;
}
finally
{
    Console.WriteLine("configuration step finished");
}`,
		KeyPoints: []string{
			"Catch specific exception types before general ones",
			"finally always runs, success or failure",
			"throw; rethrows without destroying the stack trace",
			"Never swallow exceptions with an empty catch block",
		},
		Exercise: "Write a method that reads an int from user input and keeps retrying on FormatException until a valid number is entered.",
	},
	{
		ID:        "linq",
		Name:      "LINQ",
		SectionID: "intermediate",
		Slug:      "linq",
		Explanation: `<p>LINQ brings query operators — <code>Where</code>, <code>Select</code>, <code>OrderBy</code>, <code>GroupBy</code> — to any <code>IEnumerable&lt;T&gt;</code>. Queries are lazy: nothing executes until you enumerate, e.g. with <code>ToList()</code> or a <code>foreach</code>.</p>`,
		CodeExample: `var orders = new[]
{
    new { Customer = "ada",   Total = 120m },
    new { Customer = "grace", Total = 80m },
    new { Customer = "ada",   Total = 45m },
};

var byCustomer = orders
    .Where(o => o.Total > 50)
    .GroupBy(o => o.Customer)
    .Select(g => new { Customer = g.Key, Spent = g.Sum(o => o.Total) })
    .OrderByDescending(x => x.Spent)
    .ToList();

foreach (var row in byCustomer)
{
    Console.WriteLine($"{row.Customer}: {row.Spent:C}");
}`,
		KeyPoints: []string{
			"LINQ queries compose with method chaining",
			"Execution is deferred until enumeration",
			"GroupBy yields groups with a Key and the grouped items",
			"ToList/ToArray materialize results exactly once",
		},
		Exercise: "Given a list of words, use LINQ to find the three longest distinct words, ordered by length descending.",
	},
	{
		ID:        "delegates-events",
		Name:      "Delegates and Events",
		SectionID: "advanced",
		Slug:      "delegates-and-events",
		Explanation: `<p>A delegate is a typed reference to a method; <code>Action</code> and <code>Func</code> cover most shapes. Events wrap delegates so outside code can only subscribe and unsubscribe, never invoke or clear the list.</p>`,
		CodeExample: `public class Downloader
{
    public event EventHandler<string>? Completed;

    public void Download(string url)
    {
        // ... fetch ...
        Completed?.Invoke(this, url);
    }
}

var downloader = new Downloader();
downloader.Completed += (_, url) => Console.WriteLine($"done: {url}");

Func<int, int> square = x => x * x;
Action<string> log = msg => Console.WriteLine(msg);

log($"3 squared is {square(3)}");`,
		KeyPoints: []string{
			"Func returns a value, Action returns void",
			"Events restrict invocation to the declaring class",
			"?.Invoke guards against zero subscribers",
			"Lambdas capture variables from the enclosing scope",
		},
		Exercise: "Build a Stopwatch class that raises a Ticked event every second; subscribe twice and verify both handlers fire.",
	},
	{
		ID:        "async-await",
		Name:      "Async and Await",
		SectionID: "advanced",
		Slug:      "async-await",
		Explanation: `<p><code>async</code>/<code>await</code> lets I/O-bound code read sequentially without blocking threads. An <code>async</code> method returns a <code>Task</code> (or <code>Task&lt;T&gt;</code>); awaiting it yields control until the operation completes.</p>
<p>Use <code>Task.WhenAll</code> to run independent operations concurrently; never block on async code with <code>.Result</code> or <code>.Wait()</code>.</p>`,
		CodeExample: `static async Task<string> FetchTitleAsync(HttpClient client, string url)
{
    var html = await client.GetStringAsync(url);
    return html.Length > 60 ? html[..60] : html;
}

static async Task Main()
{
    using var client = new HttpClient();

    var pages = await Task.WhenAll(
        FetchTitleAsync(client, "https://example.com"),
        FetchTitleAsync(client, "https://example.org"));

    foreach (var page in pages)
    {
        Console.WriteLine(page);
    }
}`,
		KeyPoints: []string{
			"await frees the thread instead of blocking it",
			"Task.WhenAll awaits many operations concurrently",
			"Async methods should be async end to end",
			".Result and .Wait() risk deadlocks, avoid them",
		},
		Exercise: "Write an async method that downloads three URLs concurrently and reports the total bytes received and the elapsed time.",
	},
	{
		ID:        "generics",
		Name:      "Generics",
		SectionID: "advanced",
		Slug:      "generics",
		Explanation: `<p>Generics parameterize types and methods over the types they work with, keeping code reusable and type-safe with no boxing. Constraints (<code>where T : ...</code>) declare what the implementation needs from <code>T</code>.</p>`,
		CodeExample: `public class Repository<T> where T : class, IEntity
{
    private readonly Dictionary<string, T> _items = new();

    public void Add(T item) => _items[item.Id] = item;

    public T? Find(string id)
        => _items.TryGetValue(id, out var item) ? item : null;
}

public interface IEntity
{
    string Id { get; }
}

public static T Max<T>(T a, T b) where T : IComparable<T>
    => a.CompareTo(b) >= 0 ? a : b;`,
		KeyPoints: []string{
			"Generic code is checked at compile time for every T",
			"Constraints unlock members of T inside the implementation",
			"Value types avoid boxing in generic collections",
			"Generic methods infer type arguments from usage",
		},
		Exercise: "Write a generic Swap<T>(ref T a, ref T b) method and a generic Pair<TFirst, TSecond> record, then use both together.",
	},
	{
		ID:        "solid",
		Name:      "SOLID Principles",
		SectionID: "advanced",
		Slug:      "solid",
		Explanation: `<p>SOLID names five design principles: Single responsibility, Open/closed, Liskov substitution, Interface segregation, and Dependency inversion. Together they push designs toward small, focused types wired through abstractions.</p>
<p>The example shows dependency inversion: the service depends on an abstraction, and concrete storage is chosen at composition time.</p>`,
		CodeExample: `public interface IReportStore
{
    void Save(string name, byte[] payload);
}

public class FileReportStore : IReportStore
{
    public void Save(string name, byte[] payload)
        => File.WriteAllBytes(name, payload);
}

public class ReportGenerator
{
    private readonly IReportStore _store;

    public ReportGenerator(IReportStore store) => _store = store;

    public void Run()
    {
        byte[] report = BuildReport();
        _store.Save("monthly.pdf", report);
    }

    private static byte[] BuildReport() => Array.Empty<byte>();
}`,
		KeyPoints: []string{
			"One type, one reason to change",
			"Extend behavior by adding types, not editing stable ones",
			"Subtypes must honor the contracts of their base",
			"Depend on abstractions, wire concretions at the edges",
		},
		Exercise: "Refactor a class that both formats and emails an invoice into two collaborators behind interfaces, composed by a third.",
	},
}
