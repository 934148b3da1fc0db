package question

// seed loads the curated question bank. Answers are stored with their code
// excerpts fenced; the code example field is derived from the first fence.
func (c *Catalog) seed() {
	add := func(category, subcategory, q, a string) {
		c.byCategory[category] = append(c.byCategory[category], Question{
			Category:    category,
			Subcategory: subcategory,
			Question:    q,
			Answer:      a,
			CodeExample: codeExampleFrom(a),
			Difficulty:  3,
		})
	}

	add(CategoryCoreJava, "OOP",
		"What are the four principles of OOP?",
		"The four principles of Object-Oriented Programming are:\n"+
			"1. Encapsulation: Bundling data and methods that operate on that data within a single unit (class).\n"+
			"2. Inheritance: The ability of a class to inherit properties and behavior from a parent class.\n"+
			"3. Polymorphism: The ability of an object to take many forms, typically through method overloading and overriding.\n"+
			"4. Abstraction: Hiding implementation details and showing only functionality to the user.")

	add(CategoryCoreJava, "Collections",
		"Explain the difference between ArrayList and LinkedList.",
		"ArrayList and LinkedList are both List implementations but have different performance characteristics.\n"+
			"ArrayList is backed by a dynamic array: random access is O(1) but inserting or deleting in the middle is O(n). "+
			"It suits read-heavy workloads.\n"+
			"LinkedList is a doubly-linked list: random access is O(n) but insertion and deletion at a known position is O(1). "+
			"It suits workloads with frequent structural changes and rare random access.")

	add(CategoryCoreJava, "Multithreading",
		"What is the difference between synchronized and volatile in Java?",
		"synchronized provides mutual exclusion: only one thread executes a synchronized method or block at a time, "+
			"and it guarantees both visibility and atomicity. It involves lock acquisition, which has a cost.\n"+
			"volatile only guarantees visibility of writes to a single variable across threads; compound operations "+
			"like increment are still racy. It is cheaper than synchronized but gives weaker guarantees.")

	add(CategoryCoreJava, "Streams",
		"Explain the Stream API in Java 8. What are its advantages?",
		"The Stream API processes collections in a declarative pipeline of operations. Streams are lazily evaluated, "+
			"compose well, and parallelize without explicit thread handling.\n"+
			"```java\n"+
			"List<String> filtered = list.stream()\n"+
			"    .filter(s -> s.startsWith(\"A\"))\n"+
			"    .map(String::toUpperCase)\n"+
			"    .sorted()\n"+
			"    .collect(Collectors.toList());\n"+
			"```\n"+
			"The main advantages are readability, lazy evaluation, easy parallelism, and chaining of operations.")

	add(CategoryCoreJava, "JVM",
		"Explain the JVM memory model.",
		"The JVM divides memory into several areas:\n"+
			"1. Heap: where objects live, split into young generation (Eden plus survivor spaces) and old generation.\n"+
			"2. Metaspace: class structures, method data and the constant pool.\n"+
			"3. JVM stacks: per-thread frames for method execution.\n"+
			"4. PC registers: per-thread current instruction address.\n"+
			"5. Native method stacks.\n"+
			"Garbage collection operates on the heap, reclaiming objects that are no longer reachable.")

	add(CategoryCoreJava, "Exception Handling",
		"What is the difference between checked and unchecked exceptions?",
		"Checked exceptions subclass Exception (excluding RuntimeException) and must be caught or declared with throws. "+
			"They represent conditions a caller can reasonably recover from, such as IOException or SQLException.\n"+
			"Unchecked exceptions subclass RuntimeException and need no declaration. They usually indicate programming "+
			"errors, such as NullPointerException or ArrayIndexOutOfBoundsException.")

	add(CategorySpring, "Spring Core",
		"What is Dependency Injection and how does Spring implement it?",
		"Dependency Injection means a class receives its collaborators instead of constructing them, which decouples "+
			"components and simplifies testing. Spring's IoC container manages bean creation and wiring, supporting "+
			"constructor, setter, and field injection.\n"+
			"```java\n"+
			"@Service\n"+
			"public class UserService {\n"+
			"    private final UserRepository userRepository;\n"+
			"\n"+
			"    public UserService(UserRepository userRepository) {\n"+
			"        this.userRepository = userRepository;\n"+
			"    }\n"+
			"}\n"+
			"```\n"+
			"Constructor injection is preferred because dependencies become explicit and final.")

	add(CategorySpring, "Spring Boot",
		"What are the advantages of using Spring Boot?",
		"Spring Boot auto-configures the application from its classpath, embeds a servlet container so the result runs "+
			"with a plain java -jar, ships opinionated defaults that remove boilerplate configuration, and provides "+
			"production features out of the box: health checks, metrics, externalized configuration, and starter "+
			"dependencies that keep version management in one place.")

	add(CategoryRestAPI, "REST Principles",
		"What are the key principles of RESTful API design?",
		"RESTful design rests on statelessness (each request is self-contained), a clear client-server split, cacheable "+
			"responses, a uniform resource-based interface, and layering. Resources are addressed by URL and manipulated "+
			"with the standard HTTP verbs: GET for reads, POST for creation, PUT for updates, DELETE for removal, with "+
			"status codes communicating outcomes (200, 201, 400, 404, and so on).")

	add(CategoryRestAPI, "Microservices",
		"What are the advantages and challenges of microservices architecture?",
		"Advantages: services deploy and scale independently, teams own them end to end, a failure is contained to one "+
			"service, and each service can pick its own stack.\n"+
			"Challenges: distributed-system complexity (latency, partial failure), keeping data consistent across "+
			"services, testing interactions, orchestrating deployments, and observing many moving parts. Service "+
			"discovery and inter-service auth also need explicit answers.")

	add(CategoryDatabase, "SQL",
		"Explain the difference between INNER JOIN and LEFT JOIN.",
		"INNER JOIN returns only rows with a match in both tables. LEFT JOIN returns every row of the left table and "+
			"fills right-table columns with NULL where no match exists.\n"+
			"Use INNER JOIN when only matched pairs matter, LEFT JOIN when the left side must be complete regardless "+
			"of matches, for example listing customers with or without orders.")

	add(CategoryDatabase, "Hibernate",
		"What is the difference between get() and load() methods in Hibernate?",
		"get() hits the database immediately and returns null when the row does not exist. load() returns a lazy proxy "+
			"without touching the database and throws ObjectNotFoundException on first access if the row is missing.\n"+
			"Use get() when existence is uncertain and load() when the entity is known to exist and lazy loading helps.")

	add(CategoryCloud, "Docker",
		"What is Docker and what problem does it solve?",
		"Docker packages an application with its dependencies into a container image that runs identically anywhere a "+
			"container runtime exists. It eliminates environment drift, isolates applications from each other, shares "+
			"the host kernel so containers stay lightweight, and makes horizontal scaling and versioned rollouts "+
			"straightforward.")

	add(CategoryCloud, "Kubernetes",
		"What is Kubernetes and how does it relate to Docker?",
		"Kubernetes orchestrates containers across a cluster: it schedules them onto nodes, restarts failed ones, "+
			"scales replicas with load, wires service discovery and load balancing, rolls out updates without downtime "+
			"and manages secrets and storage. Docker (or any OCI runtime) creates and runs the individual containers "+
			"that Kubernetes schedules.")

	add(CategorySystemDesign, "Scalability",
		"How would you design a highly scalable microservices architecture?",
		"Decompose by business capability with one database per service. Use synchronous calls (REST or gRPC) only "+
			"where latency demands it and asynchronous messaging for decoupling. Scale horizontally with stateless "+
			"services, cache hot reads, and shard data-heavy stores. Add resilience with circuit breakers, retries with "+
			"backoff, and rate limits. Front everything with an API gateway, register services in a discovery system, "+
			"and invest early in tracing, centralized logs and metrics.")

	add(CategorySystemDesign, "Caching",
		"Explain different caching strategies and when to use them.",
		"Cache-aside has the application load misses from the database and populate the cache; it fits read-heavy "+
			"workloads. Write-through writes cache and database together for consistency at the cost of write latency. "+
			"Write-behind batches database writes asynchronously, trading durability risk for throughput. Read-through "+
			"moves miss handling into the cache layer itself. Eviction is typically LRU, LFU or TTL-based; distributed "+
			"caches add partitioning, replication and coherence concerns.")

	add(CategoryCoding, "Algorithms",
		"Implement a function to reverse a linked list.",
		"Walk the list once, reversing each node's next pointer:\n"+
			"```java\n"+
			"public ListNode reverseLinkedList(ListNode head) {\n"+
			"    ListNode prev = null;\n"+
			"    ListNode current = head;\n"+
			"    while (current != null) {\n"+
			"        ListNode next = current.next;\n"+
			"        current.next = prev;\n"+
			"        prev = current;\n"+
			"        current = next;\n"+
			"    }\n"+
			"    return prev;\n"+
			"}\n"+
			"```\n"+
			"Time complexity is O(n), space complexity O(1).")

	add(CategoryCoding, "Data Structures",
		"Implement a function to check if a binary tree is balanced.",
		"Compute subtree heights bottom-up and short-circuit with -1 on the first imbalance:\n"+
			"```java\n"+
			"public boolean isBalanced(TreeNode root) {\n"+
			"    return checkHeight(root) != -1;\n"+
			"}\n"+
			"\n"+
			"private int checkHeight(TreeNode node) {\n"+
			"    if (node == null) {\n"+
			"        return 0;\n"+
			"    }\n"+
			"    int left = checkHeight(node.left);\n"+
			"    int right = checkHeight(node.right);\n"+
			"    if (left == -1 || right == -1 || Math.abs(left - right) > 1) {\n"+
			"        return -1;\n"+
			"    }\n"+
			"    return Math.max(left, right) + 1;\n"+
			"}\n"+
			"```\n"+
			"Time complexity is O(n); space is O(h) for the recursion stack.")
}
