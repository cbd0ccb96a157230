package composer

// defaultTopics is the built-in rotation, grouped by theme
var defaultTopics = []Topic{
	// civil economics formula
	{
		Title: "Where Does the Value Go?",
		Text:  "Every transaction creates value. The question is where it lands.\n\nVa = Vp + Ve + Vr\n\nValue from activity equals value captured privately, plus value externalized, plus residual public obligation.\n\nVp is what shows up on the invoice. Someone got paid.\n\nVe is what gets pushed onto people who weren't part of the transaction. Road wear, congestion, health costs, displaced neighbors.\n\nVr is what remains when private actors exit. The unemployed worker, the contaminated site, the pension shortfall.\n\nThe formula is simple. The insight is in the timing.",
	},
	{
		Title: "The Temporal Asymmetry of Value",
		Text:  "Private capture is fast. Externalities disperse slowly. Residual obligation surfaces late.\n\nVa(t) = Vp(t0) + Ve(t1...tn) + Vr(tn+1...)\n\nThe platform takes its commission tonight. The driver's vehicle depreciates over months. The public absorbs uninsured workers over decades.\n\nThis asymmetry explains why public systems always catch up late. By the time residual obligation becomes visible, the parties who captured value have exited.\n\nThe people who captured value are gone by the time the bill comes due.",
	},
	{
		Title: "The Arbitrage is in Boundary-Drawing",
		Text:  "Who defines where the transaction ends?\n\nThe party who draws the boundary controls how much residual obligation they acknowledge.\n\nPlatform defines transaction as: order placed, food delivered, payment processed. Transaction closed. Vp captured.\n\nBut the activity doesn't end there. Driver's vehicle still depreciating. Road still wearing. Driver's body still aging without healthcare.\n\nThe platform draws the boundary where its liability ends. Everything outside becomes someone else's problem.\n\nWhoever controls the transaction boundary controls who holds the bag.",
	},
	{
		Title: "Residual Obligation is Real",
		Text:  "Vr isn't a loss. It's a real thing the public holds.\n\nThe public didn't lose something. They got stuck with something.\n\nWhen a company exits a market, automates delivery, or fails-what remains? Workers without severance. Sites without remediation. Pensions without funding.\n\nThese aren't costs someone forgot to pay. They're obligations that transferred to whoever couldn't leave.\n\nThe formula uses plus signs because everyone got something. The question is whether what you got is worth holding.",
	},

	// parasitic intermediation
	{
		Title: "Parasitic Intermediation",
		Text:  "Rent-seeking names a behavior. Parasitic intermediation names a position.\n\nA parasitic intermediary inserts themselves into a transaction flow, captures value, and contributes nothing to the underlying activity.\n\nThe scalper didn't produce the concert. The platform didn't cook the food. The fee-stacker didn't originate the loan.\n\nThey occupy a position and extract from passage.\n\nLeslie and Sorensen found ticket resellers 'capture more surplus than they create.' That's the empirical confirmation. What we needed was the name.",
	},
	{
		Title: "Not All Intermediation is Parasitic",
		Text:  "Intermediaries can create value through matching, aggregation, quality verification, or risk absorption.\n\nA productive intermediary contributes something to the transaction that wouldn't exist without them.\n\nThe distinction is whether value capture reflects value contribution.\n\nWhen resellers capture more surplus than they create, intermediation has crossed from productive to parasitic.\n\nThe extraction exceeds the contribution. That's the line.",
	},

	// calculative asymmetry
	{
		Title: "Calculative Asymmetry",
		Text:  "Information asymmetry is about who knows what. Calculative asymmetry is about who can compute what.\n\nA gig worker may know the platform uses algorithmic dispatch. They may understand conceptually how it works.\n\nThe asymmetry persists because the worker can't compute at the same scale, speed, or sophistication.\n\nThe platform runs ML models on millions of transactions. The worker operates on intuition and a phone screen.\n\nSharing data doesn't fix this. The worker lacks infrastructure to process it. The disparity isn't in knowledge-it's in processing power.",
	},
	{
		Title: "Why Transparency Isn't Enough",
		Text:  "Standard response to information asymmetry: require disclosure.\n\nBut calculative asymmetry isn't solved by disclosure. You can give the worker all the data and they still face asymmetry because they can't run the models.\n\nAddressing calculative asymmetry may require different interventions: constraints on algorithmic optimization, data portability in usable form, or collective infrastructure that aggregates worker-side computation.\n\nTransparency assumes the problem is knowledge. Sometimes the problem is capacity.",
	},

	// spatial derivatives
	{
		Title: "Spatial Derivatives",
		Text:  "Traditional derivatives model financial assets across time. A futures contract on oil represents oil at a future date.\n\nSpatial derivatives cross domains. They attach financial instruments to civic, political, or institutional processes.\n\nA prediction market on an election doesn't model a financial asset. It models voting-which isn't supposed to operate by market principles.\n\nThe derivative creates a parallel incentive structure in systems not designed for financial optimization.\n\nWhen financial instruments attach to civic domains, they may reshape civic processes. An election with a liquid prediction market is not the same election without one.",
	},
	{
		Title: "Trust Extraction",
		Text:  "Spatial derivatives don't just extract money. They extract from shared trust infrastructure.\n\nWhen prediction markets attach to elections, they create uncertainty about whether signals reflect information or manipulation.\n\nThis degrades capacity for collective sensemaking.\n\nTrust is non-fungible. Financial markets can restore confidence in prices. They cannot restore confidence in neighbors, institutions, or shared reality.\n\nOnce extracted, relational trust regenerates slowly through repeated interaction and shared experience not mediated by financial incentive.\n\nTrust is pre-economic. It's the condition that must exist before markets, governance, or coordination can work.",
	},

	// the ambiguity economy
	{
		Title: "The Ambiguity Economy Loop",
		Text:  "Five steps:\n\n1. A regulated civic domain exists (housing, labor, transport)\n2. A reframe detaches activity from regulated category (hospitality not housing, contracting not employment)\n3. Intermediaries operationalize the gap\n4. Capital accelerates coordination faster than oversight\n5. Externalities land on public institutions\n\nPublic attention activates at step 5, after coordination has scaled. By then, arbitrage is operationally routine-statutorily questionable but embedded in workflows and livelihoods.",
	},
	{
		Title: "The Reframe is Where the Money Is",
		Text:  "Airbnb: hospitality, not housing.\nUber: technology platform, not taxi company.\nDoorDash: marketplace, not employer.\n\nThe reframe detaches activity from regulated category. Once detached, different rules apply-or no rules apply.\n\nIntermediaries don't create the ambiguity. They operationalize it. They build the infrastructure that makes the gap usable at scale.\n\nCapital flows to coordination, not innovation. The ambiguity was already there. The money is in making it work.",
	},

	// trust bankruptcy
	{
		Title: "Trust Bankruptcy vs Information Asymmetry",
		Text:  "We've moved past the era of 'information asymmetry' and into trust bankruptcy.\n\nGig workers can't trust platform wage calculations. Renters can't trust algorithmic pricing. Voters can't trust that prediction markets haven't polluted the signal.\n\nPlatforms extracted value by spending the trust infrastructure of the domains they entered. And that substrate cannot be purchased back.\n\nThis is why judgment routing matters: systems that spend trust faster than they regenerate it eventually collapse.",
	},
	{
		Title: "The Trust Sustainability Index (TSI)",
		Text:  "Organizations should report TSI alongside EBITDA.\n\nTSI = (Trust Regeneration Rate) / (Trust Depletion Rate)\n\nRegeneration = accountability actions + service improvements + visible decision-making\nDepletion = service failures + opacity + uncontested harm\n\nTSI > 1.0: Trust compounding (sustainable)\nTSI < 1.0: Trust depleting (extraction mode)\n\nMost platforms operate with TSI < 0.5. They're spending trust at twice the rate they regenerate it.\n\nEventually, you hit trust bankruptcy.",
	},

	// value and exchange
	{
		Title: "Not All Profit is Exploitation",
		Text:  "Dorian says profit always indicates information advantage. If they knew what you knew, they wouldn't take the deal.\n\nBut people trade based on different needs, different time horizons, different value functions.\n\nI once coached a tennis team for free because I needed the credential more than the money. The school captured surplus value from my labor. I captured option value on future positions.\n\nBoth parties got what they needed. Neither was ignorant.\n\nExploitation requires constrained choice or manufactured ignorance-not just surplus capture.",
	},
	{
		Title: "The Difference Between Exchange and Extraction",
		Text:  "Ask: Does the capturing party's Vp depend on the counterparty's ignorance?\n\nIf yes -> extraction. Profit requires the gap.\nIf no -> exchange. Both parties got what they valued.\n\nA sports trade where both teams get what they need for their timeline isn't exploitation-even if one player becomes a star.\n\nA platform that profits by hiding how pay is calculated-that's extraction. The business model requires the worker not to understand.",
	},

	// public mechanics
	{
		Title: "What is Public Mechanics?",
		Text:  "The study of how public services actually function versus how they're designed to work.\n\nEvery system you interact with-trash collection, building permits, student loans-has a gap between intention and operation.\n\nPublic Mechanics examines that gap. Where does value land? Who captures? What gets externalized? What obligation remains?\n\nThe formula doesn't require intent or conspiracy. It just requires asking: when this activity occurs, who holds what when it's done?",
	},
	{
		Title: "Design as Repair",
		Text:  "Most design work isn't creation. It's maintenance.\n\nWe keep broken systems functional through invisible labor. Workarounds. Patches. Human buffers absorbing what the system can't handle.\n\nThe people doing this work rarely get credit. The system appears to function. No one sees what's holding it together.\n\nDesign as repair means acknowledging that most civic systems aren't built-they're maintained. And maintained by people whose work disappears when they do it well.",
	},

	// platform critique
	{
		Title: "The Platform's Formula",
		Text:  "Platform accounting: Va = Vp\n\nThey treat externalities as nonexistent because they fall outside the transaction boundary they defined.\n\nMore honestly: Vp = Va - Ve - Vr\n\nTheir captured value equals total activity value minus everything they successfully externalized and every residual obligation they transferred.\n\nProfit depends on maximizing Ve and Vr while claiming those terms don't exist.",
	},
	{
		Title: "Aggregation Without Participation",
		Text:  "The driver gets paid for the delivery. That transaction closes.\n\nBut the driver also: depreciates a vehicle they financed, burns fuel they purchased, accumulates wear on a body they maintain, generates data the platform owns.\n\nEach is an open transaction. The driver contributes continuously. The platform compensates for one narrow slice.\n\nPlatform assembles thousands of micro-transactions into a logistics system with enormous value. Workers don't participate in that aggregation.\n\nPaid per delivery as if each were isolated, while the platform captures value of the whole.",
	},

	// judgment routing
	{
		Title: "What is Judgment Routing?",
		Text:  "Judgment routing maps automated decisions to human authority levels.\n\nEvery decision has stakes and complexity. Judgment routing answers:\n- What can AI decide alone? (Tier 0-1)\n- What needs human review? (Tier 2)\n- What requires expert judgment? (Tier 3)\n- What needs senior authority? (Tier 4)\n\nWithout explicit routing, you get authority without accountability. The AI decides, but no human is responsible when it's wrong.",
	},
	{
		Title: "The Five Tiers of Judgment Routing",
		Text:  "**Tier 0**: Fully automated, no human review\n**Tier 1**: Automated with audit trail\n**Tier 2**: Human-in-the-loop (AI proposes, human decides)\n**Tier 3**: Expert review required\n**Tier 4**: Senior leadership authority\n\nEvery automated decision should have an explicit tier. If you can't say which tier, you haven't designed the system properly.",
	},
	{
		Title: "Signing Authority: Who Can Say Yes?",
		Text:  "Every decision needs someone who can say 'yes' or 'no' and be held accountable.\n\nAutomation doesn't eliminate this - it just changes WHO signs off:\n- Tier 0: System implicitly signs\n- Tier 1: System signs, human audits\n- Tier 2: Human explicitly signs\n- Tier 3: Expert signs\n- Tier 4: Executive signs\n\nWithout clear signing authority, you have decisions without accountability.",
	},
	{
		Title: "Judgment Routing Meets Civil Economics",
		Text:  "Judgment routing asks: Who has authority to decide?\n\nCivil economics asks: Who holds obligation when the decision is wrong?\n\nBoth questions matter. Authority without accountability is abdication. Accountability without authority is scapegoating.\n\nWhen you design AI systems, map both: What tier of human authority does each decision require? And what Vr lands on whom when the system fails?\n\nThe accountability question and the obligation question are the same question asked from different directions.",
	},
	{
		Title: "The Automation Legitimacy Gap",
		Text:  "Three forces converge to make Trust & Decision Engineering necessary:\n\n1. AI delegation exposes the missing layer: 'who decided and why?' is no longer philosophical-it's technical.\n\n2. Reactive failure: Trust & Safety solves yesterday's incident. It can't design tomorrow's legitimacy.\n\n3. Substrate degradation: The public can see that platforms extracted value and left costs behind.\n\nJudgment routing builds the infrastructure these forces demand: visible authority, accountable decisions, and legitimacy that compounds instead of depletes.",
	},

	// trajectory management
	{
		Title: "Trajectory Management",
		Text:  "Trajectory management: navigating systems you can't fully control.\n\nMost organizations pretend they can predict outcomes. Trajectory management admits:\n- Uncertainty is irreducible\n- Decisions compound unpredictably\n- Authority must remain contestable\n\nJudgment routing provides the tools:\n- What decisions can we make with high confidence?\n- What requires human review due to uncertainty?\n- How do we escalate when trajectories diverge from expectations?\n\nThis isn't planning. It's designing for continued governability under conditions that resist planning.",
	},

	// decision engineering
	{
		Title: "The 90/10 Problem",
		Text:  "Ninety percent of decisions are routine and agents can handle them fine. The other ten percent carry outsized institutional risk.\n\nWithout explicit routing logic, you can't separate the two. You end up either:\n\n- Bottlenecking everything through human review (killing the efficiency gains)\n- Letting agents execute everything (accepting catastrophic edge case risk)\n- Building bespoke guardrails for each workflow (doesn't scale)\n\nThe solution isn't better agents. It's better judgment infrastructure that knows when to let agents run and when to pull the emergency brake.",
	},
	{
		Title: "Authority Chains Are Invisible Now",
		Text:  "When a paper form moved through Jan to Bill to Steve, you knew who held signing authority at each step. When an AI processes a request, that chain disappears.\n\nYou're left trying to reconstruct decisions months later with no trail. No one can tell you:\n\n- Who actually authorized this action\n- What constraints were supposed to apply\n- Why this got approved when that got blocked\n\nThis isn't an AI problem. It's an infrastructure problem. We're delegating authority without building the scaffolding that makes delegation legible.",
	},
	{
		Title: "Decision Engineering vs. Prompt Engineering",
		Text:  "Prompt engineering is about getting better outputs from language models.\n\nDecision engineering is about making authority chains, policy constraints, and escalation rules explicit rather than implicit.\n\nWhen Jan reviewed forms and passed edge cases to Steve, that was decision engineering. It was visible and traceable. We need the same clarity when AI systems process requests, only now it has to be documented, versioned, and machine-readable.\n\nYou can't prompt your way to institutional accountability.",
	},
	{
		Title: "Decision Receipts",
		Text:  "Every consequential action needs a receipt that explains what happened and why it was permitted.\n\nNot for compliance theater. For operational memory.\n\nA decision receipt links every action back to:\n- The authority that permitted it\n- The policy constraints that applied\n- The signals that triggered routing\n- The human (if any) who signed off\n\nSix months from now, when someone asks 'why did we approve that?', you don't reconstruct from Slack threads. You pull the receipt.",
	},
	{
		Title: "The Four Routing Signals",
		Text:  "Agent decisions should be evaluated across four signals:\n\n**UNCERTAINTY** - Data ambiguity or conflicting requirements\n**STAKES** - Fiscal impact, downstream risk, or stakeholder count\n**AUTHORITY** - Required sign-off level vs current delegation\n**NOVELTY** - Familiar pattern vs first-of-kind scenario\n\nThese determine routing:\n- FAST PATH for low-risk execution\n- SLOW PATH for verification\n- HUMAN ESCALATION for high stakes or authority gaps\n- SPECIALIST REFERRAL for domain mismatches\n\nThe agent doesn't decide its own boundaries. The infrastructure does.",
	},
	{
		Title: "Strategic Context Documents",
		Text:  "Executives shouldn't have to write machine-readable policy in JSON.\n\nA Strategic Context Document is human-readable intent that defines:\n- Priorities and their weights\n- Authority boundaries and thresholds\n- Escalation contacts and triggers\n- Active time periods for seasonal shifts\n\nIt's what a manager or executive actually writes. Natural language with explicit structure.\n\nThe judgment router translates it into Authority Envelopes that agents carry when they execute. The executive sets strategy. The infrastructure enforces it.",
	},
	{
		Title: "Authority Envelopes",
		Text:  "An authority envelope is what an agent carries when it executes.\n\nIt's a machine-readable container that includes:\n- Granted authorities and their limits\n- Active priorities and weights\n- Mandatory escalation triggers\n- Expiration timestamps\n\nGenerated from Strategic Context Documents and scoped to specific tasks.\n\nThe envelope travels with the agent's work. Every action gets evaluated against it. No action executes outside its bounds. When authority expires or gets revoked, the envelope updates instantly.\n\nDelegation with guardrails.",
	},
	{
		Title: "Judgment Layer vs Execution Layer",
		Text:  "Current agent frameworks mix judgment and execution into one opaque process.\n\nYou need separation:\n\n**Execution Layer** - Agent does analysis and proposes actions\n**Judgment Layer** - Evaluates proposals against institutional rules\n\nThe agent recommends. The judgment layer decides whether that recommendation:\n- Executes immediately\n- Routes for verification\n- Escalates to a human\n- Gets blocked for policy violation\n\nThis separation makes authority explicit and auditable. It's middleware for trust.",
	},
	{
		Title: "Delegatable Authority at Scale",
		Text:  "Organizations need AI agents to handle volume. But they can't delegate authority without explicit bounds.\n\nThe problem isn't technical capability. It's institutional clarity.\n\nMost orgs can't articulate:\n- What authority they're actually delegating\n- What triggers should force human review\n- Who holds signing authority for edge cases\n- How priorities shift when context changes\n\nJudgment infrastructure forces you to make this explicit. Once it's explicit, it's delegatable, enforceable, and auditable.",
	},
	{
		Title: "Fast Path, Slow Path, Escalation, Referral",
		Text:  "Not every decision needs the same treatment.\n\n**FAST PATH** - Low-risk, well-bounded, execute immediately\n**SLOW PATH** - Ambiguous data, needs verification before execution\n**HUMAN ESCALATION** - High stakes, authority gap, or first-of-kind scenario\n**SPECIALIST REFERRAL** - Outside agent's domain, needs expert review\n\nThe routing happens automatically based on signals, not agent discretion. You get speed where it's safe and caution where it matters.",
	},
	{
		Title: "Institutional Memory Through Receipts",
		Text:  "Decisions fade from Slack threads and meeting notes. Institutional memory degrades.\n\nDecision receipts create permanent, structured records that preserve:\n- What action was proposed\n- What constraints applied\n- Why it was approved or blocked\n- Who granted the authority\n\nSix months later, when priorities shift or someone asks 'why did we do that?', you have legible history. Not vibes. Not reconstructed narratives. Actual records.",
	},
	{
		Title: "Why Agents Fail Silently",
		Text:  "Most AI systems fail in one of three ways:\n\n1. **Silent failure** - Encounters an edge case, returns nothing, no one notices\n2. **Hallucinated compliance** - Makes up policy interpretation, executes anyway\n3. **Indiscriminate execution** - No boundaries defined, proceeds with risky action\n\nAll three stem from the same problem: no judgment layer.\n\nThe agent has execution capability but no institutional scaffolding to route decisions it shouldn't make alone.",
	},
	{
		Title: "Bounded Autonomy",
		Text:  "Full autonomy is a fantasy. Full human-in-the-loop kills efficiency.\n\nWhat you actually want is bounded autonomy:\n\nAgents operate freely within explicit constraints. When they hit a boundary, the system routes to the right authority level.\n\nThis requires:\n- Clear authority thresholds\n- Automatic escalation triggers\n- Receipts for every action\n- Ability to update bounds in real-time\n\nAutonomy where it's safe. Human judgment where it's not.",
	},
	{
		Title: "Policy Imprints",
		Text:  "Every decision receipt should carry a policy imprint - a versioned snapshot of the rules that applied when the action executed.\n\nPolicy changes over time. Six months from now, you need to know:\n- What policy version was active\n- What constraints existed then\n- Whether today's rules would have blocked it\n\nPolicy imprints make decisions archaeologically legible. You can reconstruct not just what happened, but what institutional logic permitted it.",
	},
	{
		Title: "Why This Isn't Just Compliance",
		Text:  "Compliance systems are backward-looking. They audit what already happened.\n\nJudgment infrastructure is forward-looking. It decides what's allowed to happen.\n\nCompliance asks: 'Did we follow the rules?'\nJudgment routing asks: 'Should this action execute?'\n\nOne is forensic. The other is operational. You need both, but they're not the same thing.",
	},
	{
		Title: "The Authority Problem",
		Text:  "When you deploy an AI agent, you're granting it authority to act on your behalf.\n\nMost organizations don't treat this as an authority delegation problem. They treat it as a technical deployment problem.\n\nSo you get agents making decisions without:\n- Knowing who actually authorized them\n- Understanding their authority limits\n- Producing records of what they did\n\nThis breaks down the first time something goes wrong and you need to explain who was responsible.",
	},
	{
		Title: "Explicit vs Implicit Constraints",
		Text:  "Most AI systems have implicit constraints buried in:\n- Training data patterns\n- Prompt instructions\n- Model behaviors\n- Developer assumptions\n\nNone of this is inspectable. None of it is enforceable.\n\nJudgment infrastructure makes constraints explicit:\n- Authority boundaries in structured formats\n- Escalation triggers as machine-readable rules\n- Priority weights that shift with context\n\nIf a constraint isn't explicit, it's not a constraint. It's a hope.",
	},
	{
		Title: "Why Escalation Needs Structure",
		Text:  "Most agent systems handle escalation poorly:\n\n- No clear threshold for when to escalate\n- No context passed to the human\n- No record of why escalation happened\n- No feedback loop to improve routing\n\nStructured escalation means:\n- Explicit triggers based on signals\n- Decision packages with all relevant context\n- Receipts that explain the routing\n- Analytics on what's escalating and why\n\nHumans should get pulled in for exceptions, not routine noise.",
	},
	{
		Title: "Trustable Autonomy",
		Text:  "You can't trust what you can't inspect.\n\nTrustable autonomy requires:\n- Visible authority boundaries\n- Audit trails for every decision\n- Ability to update constraints in real-time\n- Clear escalation when limits are exceeded\n\nThis isn't about hobbling agents. It's about giving them the scaffolding to operate at scale without organizational anxiety.",
	},
	{
		Title: "Judgment Routers as Middleware",
		Text:  "A judgment router sits between high-level human intent and low-level agent execution.\n\nIt's middleware for trust.\n\nThe agent proposes an action. The router evaluates it against institutional rules. Based on that evaluation, the action either:\n- Executes immediately with a receipt\n- Routes for verification\n- Escalates to a human with context\n- Gets blocked for policy violation\n\nYou get agent efficiency where it's safe and human judgment where it's necessary.",
	},
}
